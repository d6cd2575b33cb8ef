package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/models"
	"siyomart/internal/repository"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// ProductHandler expone la superficie de lectura del catálogo y el alta
// admin usada para seed. El core solo depende del contrato de lectura.
type ProductHandler struct {
	Products *repository.ProductRepository
}

type ProductListResponse struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int64             `json:"total"`
	Products []*models.Product `json:"products"`
}

// POST /v1/products (solo admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if product.PriceCents < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "price cannot be negative"})
		return
	}
	if product.Stock < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "stock cannot be negative"})
		return
	}

	if err := h.Products.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not insert product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GET /v1/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, pageSize := h.getPaginationParams(c)
	category := c.Query("category")

	products, total, err := h.Products.FindAll(c.Request.Context(), page, pageSize, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch products"})
		return
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Products: products,
	})
}

// GET /v1/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
		return
	}

	product, err := h.Products.FindByID(c.Request.Context(), objID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// getPaginationParams obtiene y valida los parámetros de paginación
func (h *ProductHandler) getPaginationParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	return page, pageSize
}
