package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"siyomart/internal/models"
)

type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(collection *mongo.Collection) *PaymentRepository {
	return &PaymentRepository{
		collection: collection,
	}
}

// Create inserta un intento de pago; el historial nunca se muta
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

// FindByOrder lista los intentos contra una orden, más recientes primero
func (r *PaymentRepository) FindByOrder(ctx context.Context, orderID primitive.ObjectID) ([]*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"order_id": orderID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := make([]*models.Payment, 0)
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}
