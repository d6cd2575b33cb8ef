package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/auth"
	"siyomart/internal/models"
	"siyomart/internal/service"
)

type CartHandler struct {
	Carts *service.CartService
}

type cartResponse struct {
	Message string           `json:"message"`
	Cart    *models.CartView `json:"cart"`
}

type addItemRequest struct {
	ProductID       string            `json:"productId" binding:"required"`
	Quantity        int64             `json:"quantity" binding:"required"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

type updateItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required"`
}

// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	view, err := h.Carts.GetCart(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// POST /v1/cart/add
func (h *CartHandler) AddItem(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
		return
	}

	view, err := h.Carts.AddItem(c.Request.Context(), principal.UserID, productID, req.Quantity, req.SelectedOptions)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartResponse{Message: "item added to cart", Cart: view})
}

// PUT /v1/cart/update
func (h *CartHandler) UpdateItem(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(req.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item ID"})
		return
	}

	view, err := h.Carts.UpdateQuantity(c.Request.Context(), principal.UserID, itemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartResponse{Message: "cart item updated", Cart: view})
}

// DELETE /v1/cart/remove/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item ID"})
		return
	}

	view, err := h.Carts.RemoveItem(c.Request.Context(), principal.UserID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartResponse{Message: "item removed from cart", Cart: view})
}

// DELETE /v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	principal, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.Carts.Clear(c.Request.Context(), principal.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "cart cleared"})
}
