package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/auth"
	"siyomart/internal/models"
)

// OrderService cubre lecturas de órdenes con propiedad reforzada y el
// cambio de estado de admin. Las órdenes nunca se borran.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// GetOrder devuelve la orden si el principal es el dueño o admin.
func (s *OrderService) GetOrder(ctx context.Context, principal auth.Principal, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != principal.UserID && !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListOrders devuelve las órdenes propias; admin ve todas.
func (s *OrderService) ListOrders(ctx context.Context, principal auth.Principal) ([]*models.Order, error) {
	if principal.IsAdmin() {
		return s.orders.FindAll(ctx)
	}
	return s.orders.FindByUser(ctx, principal.UserID)
}

// UpdateStatus aplica una transición de estado validada contra la
// tabla: solo hacia adelante, con Cancelled/Refunded como escapes.
func (s *OrderService) UpdateStatus(ctx context.Context, principal auth.Principal, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
