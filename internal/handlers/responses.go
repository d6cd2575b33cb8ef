package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"siyomart/internal/gateway"
	"siyomart/internal/repository"
	"siyomart/internal/service"
)

// Estructuras para respuestas
type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError traduce la taxonomía de errores del dominio a códigos
// HTTP. Todo lo no clasificado sale como 500 genérico y se loguea.
func respondError(c *gin.Context, err error) {
	var gwErr *gateway.Error

	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, repository.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCartNotFound),
		errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &gwErr):
		// el mensaje de la pasarela se expone tal cual
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: gwErr.Message})
	default:
		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
