package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/gateway"
	"siyomart/internal/models"
	"siyomart/internal/repository"
)

func newPaymentFixture(gw *mockGateway) (*PaymentService, *mockOrderStore, *mockPaymentStore) {
	orders := newMockOrderStore()
	payments := &mockPaymentStore{}
	return NewPaymentService(orders, payments, gw), orders, payments
}

func seedOrder(t *testing.T, orders *mockOrderStore) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:     "user1",
		TotalPrice: 450,
		Status:     models.OrderStatusPending,
	}
	require.NoError(t, orders.Create(context.Background(), order))
	return order
}

var codPattern = regexp.MustCompile(`^COD_\d+_[a-z0-9]+$`)

func TestProcessPayment_CashOnDelivery(t *testing.T) {
	gw := &mockGateway{}
	svc, orders, payments := newPaymentFixture(gw)
	order := seedOrder(t, orders)

	result, err := svc.ProcessPayment(context.Background(), "user1", &ProcessPaymentRequest{
		OrderID:       order.ID,
		PaymentMethod: PaymentMethodCOD,
		Amount:        450,
	})
	require.NoError(t, err)

	assert.Regexp(t, codPattern, result.TransactionID)
	assert.Equal(t, models.PaymentStatusPending, result.Status)
	assert.False(t, result.PaymentID.IsZero())
	assert.Zero(t, gw.calls, "COD nunca llama a la pasarela")

	// la orden queda anotada con la misma referencia, status intacto
	got, err := orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, result.TransactionID, got.TransactionID)
	assert.Equal(t, models.OrderStatusPending, got.Status)

	require.Len(t, payments.payments, 1)
	assert.Equal(t, order.ID, payments.payments[0].OrderID)
	assert.Equal(t, int64(450), payments.payments[0].Amount)
}

func TestProcessPayment_StripeIntent(t *testing.T) {
	gw := &mockGateway{intent: &gateway.Intent{TransactionID: "pi_123", ClientSecret: "cs_abc"}}
	svc, orders, payments := newPaymentFixture(gw)
	order := seedOrder(t, orders)

	result, err := svc.ProcessPayment(context.Background(), "user1", &ProcessPaymentRequest{
		OrderID:       order.ID,
		PaymentMethod: PaymentMethodStripe,
		Amount:        450,
		Currency:      "usd",
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", result.TransactionID)
	assert.Equal(t, models.PaymentStatusPending, result.Status)
	assert.Equal(t, 1, gw.calls)

	got, _ := orders.FindByID(context.Background(), order.ID)
	assert.Equal(t, "pi_123", got.TransactionID)
	require.Len(t, payments.payments, 1)
	assert.Equal(t, "Stripe", payments.payments[0].PaymentMethod)
}

func TestProcessPayment_GatewayFailureLeavesOrderUntouched(t *testing.T) {
	gwErr := &gateway.Error{Message: "card declined"}
	gw := &mockGateway{err: gwErr}
	svc, orders, payments := newPaymentFixture(gw)
	order := seedOrder(t, orders)

	_, err := svc.ProcessPayment(context.Background(), "user1", &ProcessPaymentRequest{
		OrderID:       order.ID,
		PaymentMethod: PaymentMethodStripe,
		Amount:        450,
	})

	var asGw *gateway.Error
	require.ErrorAs(t, err, &asGw)
	assert.Equal(t, "card declined", asGw.Message)

	// sin registro de pago y la orden sigue Pending sin transaction_id
	assert.Empty(t, payments.payments)
	got, _ := orders.FindByID(context.Background(), order.ID)
	assert.Empty(t, got.TransactionID)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestProcessPayment_OrderNotFound(t *testing.T) {
	gw := &mockGateway{}
	svc, _, payments := newPaymentFixture(gw)

	_, err := svc.ProcessPayment(context.Background(), "user1", &ProcessPaymentRequest{
		OrderID:       primitive.NewObjectID(),
		PaymentMethod: PaymentMethodCOD,
		Amount:        450,
	})
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	assert.Empty(t, payments.payments, "no se escribe ningún pago")
	assert.Zero(t, gw.calls)
}

func TestProcessPayment_Validation(t *testing.T) {
	gw := &mockGateway{}
	svc, orders, _ := newPaymentFixture(gw)
	order := seedOrder(t, orders)

	cases := map[string]*ProcessPaymentRequest{
		"nil request":    nil,
		"missing order":  {PaymentMethod: PaymentMethodCOD, Amount: 450},
		"missing method": {OrderID: order.ID, Amount: 450},
		"zero amount":    {OrderID: order.ID, PaymentMethod: PaymentMethodCOD},
		"unsupported":    {OrderID: order.ID, PaymentMethod: "Barter", Amount: 450},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ProcessPayment(context.Background(), "user1", req)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestProcessPayment_RetryAfterFailureAppendsHistory(t *testing.T) {
	gw := &mockGateway{err: &gateway.Error{Message: "timeout"}}
	svc, orders, payments := newPaymentFixture(gw)
	order := seedOrder(t, orders)

	req := &ProcessPaymentRequest{OrderID: order.ID, PaymentMethod: PaymentMethodStripe, Amount: 450}
	_, err := svc.ProcessPayment(context.Background(), "user1", req)
	require.Error(t, err)

	gw.err = nil
	gw.intent = &gateway.Intent{TransactionID: "pi_retry"}
	result, err := svc.ProcessPayment(context.Background(), "user1", req)
	require.NoError(t, err)
	assert.Equal(t, "pi_retry", result.TransactionID)
	assert.Len(t, payments.payments, 1)
}
