package controllers

import (
	"context"

	"shop-api/models"
	"shop-api/stores"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// populator expands document references into the view shapes the API
// returns: owner summaries on carts and orders, commenter usernames, per
// product average ratings, read-time order totals. References whose target
// no longer exists render as empty; that is the historical-snapshot behavior
// (orders keep product ids forever).
type populator struct {
	users    stores.UserStore
	products stores.ProductStore
	comments stores.CommentStore
	ratings  stores.RatingStore
}

func (p *populator) userSummary(ctx context.Context, id primitive.ObjectID) models.UserSummary {
	user, err := p.users.GetByID(ctx, id)
	if err != nil {
		return models.UserSummary{ID: id}
	}
	return user.Summary()
}

func (p *populator) commentUser(ctx context.Context, id primitive.ObjectID) models.CommentUser {
	user, err := p.users.GetByID(ctx, id)
	if err != nil {
		return models.CommentUser{ID: id}
	}
	return models.CommentUser{ID: user.ID, Username: user.Username}
}

// productSummary returns nil when the product no longer exists.
func (p *populator) productSummary(ctx context.Context, id primitive.ObjectID) *models.ProductSummary {
	product, err := p.products.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	ratings, err := p.ratings.GetForProduct(ctx, id, 1, 0, "")
	if err != nil {
		ratings = nil
	}
	summary := product.Summary(ratings)
	return &summary
}

func (p *populator) populateCart(ctx context.Context, cart *models.Cart) *models.PopulatedCart {
	items := make([]models.PopulatedCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.PopulatedCartItem{
			Product:      p.productSummary(ctx, item.Product),
			Quantity:     item.Quantity,
			ProductNotes: item.ProductNotes,
		})
	}
	return &models.PopulatedCart{
		ID:        cart.ID,
		User:      p.userSummary(ctx, cart.User),
		Items:     items,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}

func (p *populator) populateOrder(ctx context.Context, order *models.Order) *models.PopulatedOrder {
	items := make([]models.PopulatedOrderItem, 0, len(order.Products))
	for _, item := range order.Products {
		items = append(items, models.PopulatedOrderItem{
			Product:      p.productSummary(ctx, item.Product),
			Quantity:     item.Quantity,
			ProductNotes: item.ProductNotes,
		})
	}
	return &models.PopulatedOrder{
		ID:              order.ID,
		User:            p.userSummary(ctx, order.User),
		UserPhone:       order.UserPhone,
		Products:        items,
		Status:          order.Status,
		ShippingAddress: order.ShippingAddress,
		Notes:           order.Notes,
		TotalAmount:     models.OrderTotal(items),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func (p *populator) populateComments(ctx context.Context, comments []models.Comment) []models.PopulatedComment {
	out := make([]models.PopulatedComment, 0, len(comments))
	for _, c := range comments {
		out = append(out, models.PopulatedComment{
			ID:        c.ID,
			User:      p.commentUser(ctx, c.User),
			Product:   c.Product,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out
}

func (p *populator) populateRatings(ctx context.Context, ratings []models.Rating) []models.PopulatedRating {
	out := make([]models.PopulatedRating, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, models.PopulatedRating{
			ID:        r.ID,
			User:      p.commentUser(ctx, r.User),
			Product:   r.Product,
			Value:     r.Value,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out
}

func (p *populator) populateProduct(ctx context.Context, product models.Product) (*models.PopulatedProduct, error) {
	comments, err := p.comments.GetForProduct(ctx, product.ID, "")
	if err != nil {
		return nil, err
	}
	ratings, err := p.ratings.GetForProduct(ctx, product.ID, 1, 0, "")
	if err != nil {
		return nil, err
	}
	return &models.PopulatedProduct{
		Product:       product,
		Comments:      p.populateComments(ctx, comments),
		Ratings:       p.populateRatings(ctx, ratings),
		AverageRating: models.AverageRating(ratings),
	}, nil
}
