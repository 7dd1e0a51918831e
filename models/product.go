package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is a reference into the external image store.
type Image struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
}

// Product is a catalog entry. Once any order references a product it can no
// longer be updated or deleted.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Source      string             `bson:"source" json:"source"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       Image              `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductUpdate carries the mutable product fields.
type ProductUpdate struct {
	Name        string  `json:"name"`
	Source      string  `json:"source"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductSummary is the slice of a product embedded in carts and orders.
type ProductSummary struct {
	ID            primitive.ObjectID `json:"_id"`
	Name          string             `json:"name"`
	Source        string             `json:"source"`
	Category      string             `json:"category"`
	Price         float64            `json:"price"`
	Image         Image              `json:"image"`
	AverageRating float64            `json:"averageRating"`
}

// Summary returns the embeddable view of the product. The average is derived
// from the ratings at read time, never stored.
func (p *Product) Summary(ratings []Rating) ProductSummary {
	return ProductSummary{
		ID:            p.ID,
		Name:          p.Name,
		Source:        p.Source,
		Category:      p.Category,
		Price:         p.Price,
		Image:         p.Image,
		AverageRating: AverageRating(ratings),
	}
}

// PopulatedProduct is a product with its comments, ratings and derived
// average expanded for display.
type PopulatedProduct struct {
	Product
	Comments      []PopulatedComment `json:"comments"`
	Ratings       []PopulatedRating  `json:"ratings"`
	AverageRating float64            `json:"averageRating"`
}

// AverageRating is the mean rating value, 0 for an unrated product.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	return float64(sum) / float64(len(ratings))
}
