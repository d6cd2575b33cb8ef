package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecompute_FullReduction(t *testing.T) {
	cart := &Cart{
		UserID: "user1",
		Items: []CartItem{
			{ItemID: primitive.NewObjectID(), Quantity: 3, UnitPrice: 100},
			{ItemID: primitive.NewObjectID(), Quantity: 2, UnitPrice: 250},
		},
		// totales persistidos con deriva a propósito
		CartTotal: 999,
		ItemCount: 999,
	}

	cart.Recompute()

	assert.Equal(t, int64(300), cart.Items[0].Subtotal)
	assert.Equal(t, int64(500), cart.Items[1].Subtotal)
	assert.Equal(t, int64(800), cart.CartTotal)
	assert.Equal(t, int64(5), cart.ItemCount)
}

func TestRecompute_EmptyCart(t *testing.T) {
	cart := &Cart{UserID: "user1", CartTotal: 50, ItemCount: 2}
	cart.Recompute()
	assert.Zero(t, cart.CartTotal)
	assert.Zero(t, cart.ItemCount)
}

func TestFindItemAndProduct(t *testing.T) {
	itemID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	cart := &Cart{Items: []CartItem{{ItemID: itemID, ProductID: productID}}}

	assert.Equal(t, 0, cart.FindItem(itemID))
	assert.Equal(t, 0, cart.FindProduct(productID))
	assert.Equal(t, -1, cart.FindItem(primitive.NewObjectID()))
	assert.Equal(t, -1, cart.FindProduct(primitive.NewObjectID()))
}

func TestEmptyCartView(t *testing.T) {
	view := EmptyCartView()
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.CartTotal)
	assert.Zero(t, view.ItemCount)
}
