package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus es el estado de un intento de pago.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusSuccess  PaymentStatus = "Success"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// Payment es la entrada de libro mayor que liga una orden con una
// transacción de la pasarela. Historial inmutable de intentos: un
// intento fallido no borra la orden ni intentos anteriores.
type Payment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrderID        primitive.ObjectID `json:"order_id" bson:"order_id"`
	TransactionID  string             `json:"transaction_id" bson:"transaction_id"`
	Amount         int64              `json:"amount" bson:"amount"`
	Currency       string             `json:"currency" bson:"currency"`
	Status         PaymentStatus      `json:"status" bson:"status"`
	PaymentMethod  string             `json:"payment_method" bson:"payment_method"`
	PaymentDetails map[string]string  `json:"payment_details,omitempty" bson:"payment_details,omitempty"`
	BillingAddress *ShippingAddress   `json:"billing_address,omitempty" bson:"billing_address,omitempty"`
	Metadata       map[string]string  `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
