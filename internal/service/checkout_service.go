package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/cache"
	"siyomart/internal/models"
	"siyomart/internal/repository"
)

// PlaceOrderRequest es la instantánea de checkout enviada por el
// cliente. Los importes del order_summary se aceptan tras validar
// presencia, no se recalculan contra el carrito vivo (ver DESIGN.md).
type PlaceOrderRequest struct {
	Products        []models.OrderItem
	ShippingAddress *models.ShippingAddress
	ReceiverDetails *models.ReceiverDetails
	ShippingMethod  string
	ShippingCharges int64
	PaymentMethod   string
	AppliedCoupon   string
	CustomerMessage string
	OrderSummary    *models.OrderSummary
}

// CheckoutService transiciona el carrito a una orden. La secuencia es
// reservar stock (decremento con guarda, compensado si una línea falla),
// crear la orden y borrar el carrito. La orden nunca depende del pago.
type CheckoutService struct {
	orders   OrderStore
	carts    CartStore
	products ProductStore
	cache    cache.CartCache
}

func NewCheckoutService(orders OrderStore, carts CartStore, products ProductStore, cartCache cache.CartCache) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		carts:    carts,
		products: products,
		cache:    cartCache,
	}
}

// PlaceOrder crea la orden con status Pending y devuelve su id.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, req *PlaceOrderRequest) (primitive.ObjectID, error) {
	if err := validatePlaceOrder(req); err != nil {
		return primitive.NilObjectID, err
	}

	if err := s.reserveStock(ctx, req.Products); err != nil {
		return primitive.NilObjectID, err
	}

	order := &models.Order{
		UserID:          userID,
		Products:        req.Products,
		TotalPrice:      req.OrderSummary.FinalTotal,
		Status:          models.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: *req.ShippingAddress,
		ReceiverDetails: *req.ReceiverDetails,
		ShippingMethod:  req.ShippingMethod,
		ShippingCharges: req.ShippingCharges,
		AppliedCoupon:   req.AppliedCoupon,
		CustomerMessage: req.CustomerMessage,
		OrderSummary:    *req.OrderSummary,
	}
	for i := range order.Products {
		order.Products[i].SubTotal = order.Products[i].Quantity * order.Products[i].Price
	}

	if err := s.orders.Create(ctx, order); err != nil {
		// la orden no existe: devolver el stock reservado
		s.releaseStock(ctx, req.Products)
		return primitive.NilObjectID, err
	}

	// Orden primero: si el borrado del carrito falla se registra y se
	// sigue; la orden ya es la fuente de verdad.
	if err := s.carts.Delete(ctx, userID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		log.Printf("checkout: failed to clear cart for user %s: %v", userID, err)
	}
	s.invalidateCart(userID)

	return order.ID, nil
}

func validatePlaceOrder(req *PlaceOrderRequest) error {
	if req == nil || len(req.Products) == 0 {
		return fmt.Errorf("%w: products are required", ErrInvalidArgument)
	}
	if req.ShippingAddress == nil {
		return fmt.Errorf("%w: shipping_address is required", ErrInvalidArgument)
	}
	if req.ReceiverDetails == nil {
		return fmt.Errorf("%w: receiver_details is required", ErrInvalidArgument)
	}
	if req.OrderSummary == nil {
		return fmt.Errorf("%w: order_summary is required", ErrInvalidArgument)
	}
	for _, item := range req.Products {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item quantity must be at least 1", ErrInvalidArgument)
		}
	}
	return nil
}

// reserveStock descuenta cada línea con la guarda stock >= n. Si una
// línea falla, devuelve lo ya descontado antes de reportar el error.
func (s *CheckoutService) reserveStock(ctx context.Context, items []models.OrderItem) error {
	reserved := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.releaseStock(ctx, reserved)
			return err
		}
		reserved = append(reserved, item)
	}
	return nil
}

// releaseStock es la acción compensatoria de reserveStock.
func (s *CheckoutService) releaseStock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		if err := s.products.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("checkout: failed to restore stock for product %s: %v", item.ProductID.Hex(), err)
		}
	}
}

func (s *CheckoutService) invalidateCart(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheInvalidateTimeout)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
