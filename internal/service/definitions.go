package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"siyomart/internal/models"
)

// presupuesto corto para invalidaciones de caché fuera del request
const cacheInvalidateTimeout = time.Second

// Interfaces de persistencia declaradas del lado consumidor; las
// implementan los repositorios de mongo y los mocks de los tests.

type ProductStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Product, error)
	DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int64) error
	RestoreStock(ctx context.Context, id primitive.ObjectID, quantity int64) error
}

type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Upsert(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]*models.Order, error)
	FindAll(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error
	SetTransactionID(ctx context.Context, id primitive.ObjectID, transactionID string) error
}

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
}
