package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adjustment directions accepted by the inc-dec-quantity operation.
const (
	AdjustIncrease = "increase"
	AdjustDecrease = "decrease"
)

// CartItem is one line in a cart. The same shape is snapshotted onto orders.
type CartItem struct {
	Product      primitive.ObjectID `bson:"product" json:"product"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	ProductNotes string             `bson:"productNotes,omitempty" json:"productNotes,omitempty"`
}

// Cart is a user's mutable line-item collection. One cart per user, created
// at registration; placing an order empties it but never deletes it.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ItemIndex returns the index of the line item for product, or -1.
func (c *Cart) ItemIndex(product primitive.ObjectID) int {
	for i, item := range c.Items {
		if item.Product == product {
			return i
		}
	}
	return -1
}

// AddItem puts a product in the cart. If a line item for the product already
// exists its quantity grows by the requested amount; quantities accumulate,
// they never replace. There is no upper bound and no check that the product
// still exists.
func (c *Cart) AddItem(product primitive.ObjectID, quantity int, notes string) {
	if i := c.ItemIndex(product); i != -1 {
		c.Items[i].Quantity += quantity
		return
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity, ProductNotes: notes})
}

// RemoveItem deletes the line item for product entirely. It reports whether
// the product was present.
func (c *Cart) RemoveItem(product primitive.ObjectID) bool {
	i := c.ItemIndex(product)
	if i == -1 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// Increase grows the line item's quantity by amount. It reports whether the
// product was present.
func (c *Cart) Increase(product primitive.ObjectID, amount int) bool {
	i := c.ItemIndex(product)
	if i == -1 {
		return false
	}
	c.Items[i].Quantity += amount
	return true
}

// Decrease shrinks the line item's quantity by amount. When amount reaches or
// exceeds the current quantity the line item is removed outright: decreasing
// a line of 3 by 10 deletes the line, it does not clamp to 1 or error. It
// reports whether the product was present.
func (c *Cart) Decrease(product primitive.ObjectID, amount int) bool {
	i := c.ItemIndex(product)
	if i == -1 {
		return false
	}
	if c.Items[i].Quantity > amount {
		c.Items[i].Quantity -= amount
	} else {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
	return true
}

// PopulatedCartItem is a cart line with its product expanded for display.
type PopulatedCartItem struct {
	Product      *ProductSummary `json:"product"`
	Quantity     int             `json:"quantity"`
	ProductNotes string          `json:"productNotes,omitempty"`
}

// PopulatedCart is the cart as returned to clients, with the owner and every
// product expanded.
type PopulatedCart struct {
	ID        primitive.ObjectID  `json:"_id"`
	User      UserSummary         `json:"user"`
	Items     []PopulatedCartItem `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}
