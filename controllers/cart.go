package controllers

import (
	"net/http"

	"shop-api/middleware"
	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartController handles the per-user line-item collection. Only the cart's
// owner may mutate it.
type CartController struct {
	Carts stores.CartStore
	populator
}

// NewCartController creates a new CartController.
func NewCartController(carts stores.CartStore, users stores.UserStore, products stores.ProductStore, comments stores.CommentStore, ratings stores.RatingStore) *CartController {
	return &CartController{
		Carts: carts,
		populator: populator{
			users:    users,
			products: products,
			comments: comments,
			ratings:  ratings,
		},
	}
}

type cartItemRequest struct {
	CartID       string `json:"cartId"`
	Product      string `json:"product"`
	Quantity     int    `json:"quantity"`
	ProductNotes string `json:"productNotes"`
	Type         string `json:"type"`
}

// loadOwnedCart fetches the cart and checks the caller owns it. It writes
// the error response itself when it returns nil.
func (cc *CartController) loadOwnedCart(w http.ResponseWriter, r *http.Request, cartID string) (*models.Cart, primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id.")
		return nil, primitive.NilObjectID, false
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	cart, err := cc.Carts.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Cart not found.")
		return nil, primitive.NilObjectID, false
	}
	claims := middleware.ClaimsFrom(r)
	if claims == nil || claims.ID != cart.User.Hex() {
		utils.Error(w, http.StatusForbidden, "Access denied. Only the owner of the cart.")
		return nil, primitive.NilObjectID, false
	}
	return cart, id, true
}

// AddItem puts a product in the cart. An existing line item accumulates the
// requested quantity; there is no upper bound and no check that the product
// still exists.
func (cc *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var body cartItemRequest
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	productID, err := primitive.ObjectIDFromHex(body.Product)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	cart, cartID, ok := cc.loadOwnedCart(w, r, body.CartID)
	if !ok {
		return
	}

	cart.AddItem(productID, body.Quantity, body.ProductNotes)

	ctx, cancel := reqCtx(r)
	defer cancel()

	if err := cc.Carts.SetItems(ctx, cartID, cart.Items); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating cart.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"cart":    cc.populateCart(ctx, cart),
		"message": "Item added successfully.",
	})
}

// RemoveItem deletes a line item entirely.
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var body cartItemRequest
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	productID, err := primitive.ObjectIDFromHex(body.Product)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	cart, cartID, ok := cc.loadOwnedCart(w, r, body.CartID)
	if !ok {
		return
	}
	if !cart.RemoveItem(productID) {
		utils.Error(w, http.StatusBadRequest, "Product not in the cart.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	if err := cc.Carts.SetItems(ctx, cartID, cart.Items); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating cart.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"cart":    cc.populateCart(ctx, cart),
		"message": "Item removed from the cart.",
	})
}

// AdjustQuantity increases or decreases a line item's quantity. Decreasing
// by the current quantity or more removes the line item outright.
func (cc *CartController) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var body cartItemRequest
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	productID, err := primitive.ObjectIDFromHex(body.Product)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	cart, cartID, ok := cc.loadOwnedCart(w, r, body.CartID)
	if !ok {
		return
	}
	if cart.ItemIndex(productID) == -1 {
		utils.Error(w, http.StatusNotFound, "Product not in the cart.")
		return
	}

	switch body.Type {
	case models.AdjustIncrease:
		cart.Increase(productID, body.Quantity)
	case models.AdjustDecrease:
		cart.Decrease(productID, body.Quantity)
	default:
		utils.Error(w, http.StatusBadRequest, "Invalid operation.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	if err := cc.Carts.SetItems(ctx, cartID, cart.Items); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating cart.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"cart":    cc.populateCart(ctx, cart),
		"message": "Quantity updated successfully.",
	})
}

// GetForUser returns a user's cart with owner and products expanded. Any
// logged-in caller may read it.
func (cc *CartController) GetForUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	cart, err := cc.Carts.GetByUser(ctx, userID)
	if err != nil {
		storeError(w, err, "Cart not found.")
		return
	}
	utils.JSON(w, http.StatusOK, cc.populateCart(ctx, cart))
}
