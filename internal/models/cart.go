package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem es una línea del carrito. El subtotal siempre se deriva de
// quantity × unit_price; nunca se persiste un valor que no cumpla eso.
type CartItem struct {
	ItemID          primitive.ObjectID `json:"item_id" bson:"item_id"`
	ProductID       primitive.ObjectID `json:"product_id" bson:"product_id"`
	Quantity        int64              `json:"quantity" bson:"quantity"`
	UnitPrice       int64              `json:"unit_price" bson:"unit_price"`
	Subtotal        int64              `json:"subtotal" bson:"subtotal"`
	SelectedOptions map[string]string  `json:"selected_options,omitempty" bson:"selected_options,omitempty"`
	AddedAt         time.Time          `json:"added_at" bson:"added_at"`
}

// Cart es el agregado mutable por usuario. Un documento por user_id
// (índice único); se crea en el primer add y se borra al limpiar o
// al completar el checkout.
type Cart struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"user_id" bson:"user_id"`
	Items       []CartItem         `json:"items" bson:"items"`
	CartTotal   int64              `json:"cart_total" bson:"cart_total"`
	ItemCount   int64              `json:"item_count" bson:"item_count"`
	LastUpdated time.Time          `json:"last_updated" bson:"last_updated"`
}

// Recompute recalcula los totales por reducción completa sobre las líneas.
// Nunca se mantienen incrementalmente para evitar deriva.
func (c *Cart) Recompute() {
	var total, count int64
	for i := range c.Items {
		c.Items[i].Subtotal = c.Items[i].Quantity * c.Items[i].UnitPrice
		total += c.Items[i].Subtotal
		count += c.Items[i].Quantity
	}
	c.CartTotal = total
	c.ItemCount = count
}

// FindItem devuelve el índice de la línea con ese item_id, o -1.
func (c *Cart) FindItem(itemID primitive.ObjectID) int {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// FindProduct devuelve el índice de la línea de ese producto, o -1.
func (c *Cart) FindProduct(productID primitive.ObjectID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// CartViewItem es la línea enriquecida con datos vivos del producto
// para la respuesta de GET /cart.
type CartViewItem struct {
	CartItem
	Name         string   `json:"name"`
	Images       []string `json:"images,omitempty"`
	Stock        int64    `json:"stock"`
	CurrentPrice int64    `json:"current_price"`
}

// CartView es la forma de respuesta del carrito. Un usuario sin carrito
// recibe el centinela vacío, nunca un 404.
type CartView struct {
	Items     []CartViewItem `json:"items"`
	CartTotal int64          `json:"cartTotal"`
	ItemCount int64          `json:"itemCount"`
}

// EmptyCartView es el centinela para usuarios sin carrito.
func EmptyCartView() *CartView {
	return &CartView{Items: []CartViewItem{}}
}
