package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. The system performs no transition validation: any status
// may be set from any other by an authorized actor.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusCanceled  = "canceled"
)

// ValidStatus reports whether status is one of the enumerated values.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusShipped, StatusCanceled:
		return true
	}
	return false
}

// Order is an immutable snapshot of line items placed by a user. The items
// are supplied by the caller at creation time and never change afterwards.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	UserPhone       string             `bson:"userPhone" json:"userPhone"`
	Products        []CartItem         `bson:"products" json:"products"`
	Status          string             `bson:"status" json:"status"`
	ShippingAddress string             `bson:"shippingAddress" json:"shippingAddress"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedOrderItem is an order line with its product expanded. The product
// may be nil when it was deleted after the order was placed; the order keeps
// the reference forever as a historical snapshot.
type PopulatedOrderItem struct {
	Product      *ProductSummary `json:"product"`
	Quantity     int             `json:"quantity"`
	ProductNotes string          `json:"productNotes,omitempty"`
}

// PopulatedOrder is the order as returned to clients. TotalAmount is derived
// on every read from the current product prices; nothing is stored on the
// line items, so a later price change shifts historical totals too.
type PopulatedOrder struct {
	ID              primitive.ObjectID   `json:"_id"`
	User            UserSummary          `json:"user"`
	UserPhone       string               `json:"userPhone"`
	Products        []PopulatedOrderItem `json:"products"`
	Status          string               `json:"status"`
	ShippingAddress string               `json:"shippingAddress"`
	Notes           string               `json:"notes,omitempty"`
	TotalAmount     float64              `json:"totalAmount"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// OrderTotal sums quantity times current price over the populated items.
// Items whose product no longer exists contribute nothing.
func OrderTotal(items []PopulatedOrderItem) float64 {
	sum := 0.0
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}
