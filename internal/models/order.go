package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem es la copia congelada de una línea de carrito al momento
// del checkout. Una vez creada la orden no se muta jamás.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"product_id" bson:"product_id" binding:"required"`
	Quantity  int64              `json:"quantity" bson:"quantity" binding:"required"`
	Price     int64              `json:"price" bson:"price"`
	SubTotal  int64              `json:"sub_total" bson:"sub_total"`
}

// OrderSummary es el desglose de importes enviado por el cliente.
type OrderSummary struct {
	Subtotal        int64 `json:"subtotal" bson:"subtotal"`
	ShippingCharges int64 `json:"shipping_charges" bson:"shipping_charges"`
	CouponDiscount  int64 `json:"coupon_discount" bson:"coupon_discount"`
	FinalTotal      int64 `json:"final_total" bson:"final_total"`
}

// ShippingAddress es la dirección de entrega tal como la envía el cliente.
type ShippingAddress struct {
	Street     string `json:"street" bson:"street"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Country    string `json:"country" bson:"country"`
}

// ReceiverDetails identifica a quién se entrega el pedido.
type ReceiverDetails struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// Order es la instantánea inmutable de un checkout. Nunca se borra;
// solo se muta su status (admin) o su transaction_id (pago).
type Order struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID           string             `json:"user_id" bson:"user_id"`
	Products         []OrderItem        `json:"products" bson:"products"`
	TotalPrice       int64              `json:"total_price" bson:"total_price"`
	Status           OrderStatus        `json:"status" bson:"status"`
	PaymentMethod    string             `json:"payment_method" bson:"payment_method"`
	TransactionID    string             `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	PaymentConfirmed bool               `json:"payment_confirmed" bson:"payment_confirmed"`
	ShippingAddress  ShippingAddress    `json:"shipping_address" bson:"shipping_address"`
	ReceiverDetails  ReceiverDetails    `json:"receiver_details" bson:"receiver_details"`
	ShippingMethod   string             `json:"shipping_method" bson:"shipping_method"`
	ShippingCharges  int64              `json:"shipping_charges" bson:"shipping_charges"`
	AppliedCoupon    string             `json:"applied_coupon,omitempty" bson:"applied_coupon,omitempty"`
	CustomerMessage  string             `json:"customer_message,omitempty" bson:"customer_message,omitempty"`
	OrderSummary     OrderSummary       `json:"order_summary" bson:"order_summary"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}
