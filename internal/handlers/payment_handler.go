package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/auth"
	"siyomart/internal/models"
	"siyomart/internal/service"
)

type PaymentHandler struct {
	Payments *service.PaymentService
}

type processPaymentRequest struct {
	OrderID        string                  `json:"orderId"`
	PaymentMethod  string                  `json:"paymentMethod"`
	Amount         int64                   `json:"amount"`
	Currency       string                  `json:"currency,omitempty"`
	PaymentDetails map[string]string       `json:"paymentDetails,omitempty"`
	BillingAddress *models.ShippingAddress `json:"billingAddress,omitempty"`
}

type processPaymentResponse struct {
	Message       string               `json:"message"`
	PaymentID     string               `json:"paymentId"`
	TransactionID string               `json:"transactionId"`
	Status        models.PaymentStatus `json:"status"`
}

// POST /v1/payments/process
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req processPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.OrderID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "orderId is required"})
		return
	}
	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order ID"})
		return
	}

	result, err := h.Payments.ProcessPayment(c.Request.Context(), principal.UserID, &service.ProcessPaymentRequest{
		OrderID:        orderID,
		PaymentMethod:  req.PaymentMethod,
		Amount:         req.Amount,
		Currency:       req.Currency,
		PaymentDetails: req.PaymentDetails,
		BillingAddress: req.BillingAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, processPaymentResponse{
		Message:       "payment recorded",
		PaymentID:     result.PaymentID.Hex(),
		TransactionID: result.TransactionID,
		Status:        result.Status,
	})
}
