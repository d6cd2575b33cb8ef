package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/gateway"
	"siyomart/internal/models"
)

const (
	PaymentMethodStripe = "Stripe"
	PaymentMethodCOD    = "Cash on Delivery"

	defaultCurrency = "usd"
)

// ProcessPaymentRequest describe un intento de pago contra una orden.
// Amount viaja en unidades menores.
type ProcessPaymentRequest struct {
	OrderID        primitive.ObjectID
	PaymentMethod  string
	Amount         int64
	Currency       string
	PaymentDetails map[string]string
	BillingAddress *models.ShippingAddress
}

// PaymentResult es lo que ve el cliente tras registrar el intento.
type PaymentResult struct {
	PaymentID     primitive.ObjectID   `json:"paymentId"`
	TransactionID string               `json:"transactionId"`
	Status        models.PaymentStatus `json:"status"`
}

// PaymentService registra intentos de pago contra órdenes existentes.
// Orden primero, pago después: un fallo de pasarela deja la orden
// Pending y sin transaction_id, lista para reintentar.
type PaymentService struct {
	orders   OrderStore
	payments PaymentStore
	gateway  gateway.PaymentGateway
}

func NewPaymentService(orders OrderStore, payments PaymentStore, gw gateway.PaymentGateway) *PaymentService {
	return &PaymentService{
		orders:   orders,
		payments: payments,
		gateway:  gw,
	}
}

// ProcessPayment resuelve el transaction_id según el método, persiste
// el registro de pago y anota la orden. El status de la orden no cambia.
func (s *PaymentService) ProcessPayment(ctx context.Context, userID string, req *ProcessPaymentRequest) (*PaymentResult, error) {
	if req == nil || req.OrderID.IsZero() {
		return nil, fmt.Errorf("%w: orderId is required", ErrInvalidArgument)
	}
	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: paymentMethod is required", ErrInvalidArgument)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}

	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	var transactionID string
	switch req.PaymentMethod {
	case PaymentMethodStripe:
		intent, errIntent := s.gateway.CreateIntent(ctx, gateway.IntentRequest{
			Amount:   req.Amount,
			Currency: currency,
			OrderID:  order.ID.Hex(),
			UserID:   order.UserID,
		})
		if errIntent != nil {
			// la orden queda Pending y sin transaction_id
			return nil, errIntent
		}
		transactionID = intent.TransactionID
	case PaymentMethodCOD:
		transactionID = codTransactionID()
	default:
		return nil, fmt.Errorf("%w: unsupported payment method %q", ErrInvalidArgument, req.PaymentMethod)
	}

	payment := &models.Payment{
		UserID:         userID,
		OrderID:        order.ID,
		TransactionID:  transactionID,
		Amount:         req.Amount,
		Currency:       currency,
		Status:         models.PaymentStatusPending,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		BillingAddress: req.BillingAddress,
		Metadata: map[string]string{
			"order_id": order.ID.Hex(),
			"user_id":  order.UserID,
		},
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.orders.SetTransactionID(ctx, order.ID, transactionID); err != nil {
		return nil, err
	}

	return &PaymentResult{
		PaymentID:     payment.ID,
		TransactionID: transactionID,
		Status:        payment.Status,
	}, nil
}

const codAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// codTransactionID sintetiza una referencia local COD_<unix-ms>_<alnum>.
func codTransactionID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = codAlphabet[int(buf[i])%len(codAlphabet)]
	}
	return fmt.Sprintf("COD_%d_%s", time.Now().UnixMilli(), buf)
}
