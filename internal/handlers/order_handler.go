package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/auth"
	"siyomart/internal/models"
	"siyomart/internal/service"
)

type OrderHandler struct {
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

// La validación de presencia la hace el servicio; aquí solo se decodifica.
type placeOrderRequest struct {
	Products        []models.OrderItem      `json:"products"`
	ShippingAddress *models.ShippingAddress `json:"shipping_address"`
	ReceiverDetails *models.ReceiverDetails `json:"receiver_details"`
	ShippingMethod  string                  `json:"shipping_method"`
	ShippingCharges int64                   `json:"shipping_charges"`
	PaymentMethod   string                  `json:"paymentMethod"`
	AppliedCoupon   string                  `json:"applied_coupon,omitempty"`
	CustomerMessage string                  `json:"customer_message,omitempty"`
	OrderSummary    *models.OrderSummary    `json:"order_summary"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// POST /v1/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	orderID, err := h.Checkout.PlaceOrder(c.Request.Context(), principal.UserID, &service.PlaceOrderRequest{
		Products:        req.Products,
		ShippingAddress: req.ShippingAddress,
		ReceiverDetails: req.ReceiverDetails,
		ShippingMethod:  req.ShippingMethod,
		ShippingCharges: req.ShippingCharges,
		PaymentMethod:   req.PaymentMethod,
		AppliedCoupon:   req.AppliedCoupon,
		CustomerMessage: req.CustomerMessage,
		OrderSummary:    req.OrderSummary,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, placeOrderResponse{
		Message: "order placed successfully",
		OrderID: orderID.Hex(),
	})
}

// GET /v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	orders, err := h.Orders.ListOrders(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order ID"})
		return
	}

	order, err := h.Orders.GetOrder(c.Request.Context(), principal, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// PATCH /v1/orders/:id (solo admin)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order ID"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.Orders.UpdateStatus(c.Request.Context(), principal, orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order status updated", "order": order})
}
