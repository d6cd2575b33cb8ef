package cache

import (
	"context"
	"errors"

	"siyomart/internal/models"
)

// CartCache guarda la vista poblada del carrito. La vista incluye precio
// y stock vivos del producto, por eso el TTL es corto y toda mutación
// del carrito invalida la entrada.
type CartCache interface {
	Get(ctx context.Context, userID string) (*models.CartView, error)
	Set(ctx context.Context, userID string, view *models.CartView) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
