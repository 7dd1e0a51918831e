package controllers

import (
	"errors"
	"net/http"

	"shop-api/middleware"
	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingController handles product ratings. Rating is an upsert keyed on the
// (user, product) pair: a repeat rating overwrites the prior value, it never
// inserts a second row.
type RatingController struct {
	Ratings stores.RatingStore
	populator
}

// NewRatingController creates a new RatingController.
func NewRatingController(ratings stores.RatingStore, users stores.UserStore) *RatingController {
	return &RatingController{
		Ratings:   ratings,
		populator: populator{users: users, ratings: ratings},
	}
}

// CreateOrUpdate rates a product as the caller. An existing rating for the
// pair gets its value overwritten (200); otherwise one is created (201).
func (rc *RatingController) CreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User    string `json:"user"`
		Product string `json:"product"`
		Value   int    `json:"value"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	claims := middleware.ClaimsFrom(r)
	if claims == nil || claims.ID != body.User {
		utils.Error(w, http.StatusForbidden, "Access denied. Can't add rate for another user. Only for you.")
		return
	}
	if !models.ValidRatingValue(body.Value) {
		utils.Error(w, http.StatusBadRequest, "Allowed values is: 1, 2, 3, 4, 5.")
		return
	}
	userID, err := primitive.ObjectIDFromHex(body.User)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id.")
		return
	}
	productID, err := primitive.ObjectIDFromHex(body.Product)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	existing, err := rc.Ratings.GetByUserAndProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, stores.ErrNotFound) {
		utils.Error(w, http.StatusInternalServerError, "Error fetching rating.")
		return
	}

	if existing != nil {
		updated, err := rc.Ratings.UpdateValue(ctx, existing.ID, body.Value)
		if err != nil {
			storeError(w, err, "Rating not found.")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"message": "We updated your rate successfully.",
			"rate":    rc.populateRatings(ctx, []models.Rating{*updated})[0],
		})
		return
	}

	rating := &models.Rating{User: userID, Product: productID, Value: body.Value}
	if err := rc.Ratings.Create(ctx, rating); err != nil {
		// A concurrent create for the same pair hit the unique index; fold
		// into the overwrite path.
		var dup *stores.DuplicateKeyError
		if errors.As(err, &dup) {
			if existing, err := rc.Ratings.GetByUserAndProduct(ctx, userID, productID); err == nil {
				if updated, err := rc.Ratings.UpdateValue(ctx, existing.ID, body.Value); err == nil {
					utils.JSON(w, http.StatusOK, map[string]any{
						"message": "We updated your rate successfully.",
						"rate":    rc.populateRatings(ctx, []models.Rating{*updated})[0],
					})
					return
				}
			}
		}
		utils.Error(w, http.StatusInternalServerError, "Error creating rating.")
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "Your rate added successfully.",
		"rate":    rc.populateRatings(ctx, []models.Rating{*rating})[0],
	})
}

// Delete removes a rating. Owner only.
func (rc *RatingController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	rating, err := rc.Ratings.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Rating not found.")
		return
	}
	claims := middleware.ClaimsFrom(r)
	if claims == nil || claims.ID != rating.User.Hex() {
		utils.Error(w, http.StatusForbidden, "Access denied. Only the owner of the rate.")
		return
	}

	if err := rc.Ratings.Delete(ctx, id); err != nil {
		storeError(w, err, "Rating not found.")
		return
	}
	utils.Message(w, http.StatusOK, "Deleted successfully.")
}

// GetAll lists every rating.
func (rc *RatingController) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	ratings, err := rc.Ratings.GetAll(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching ratings.")
		return
	}
	utils.JSON(w, http.StatusOK, rc.populateRatings(ctx, ratings))
}

// GetForProduct pages a product's ratings.
func (rc *RatingController) GetForProduct(w http.ResponseWriter, r *http.Request) {
	productID, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	page, limit := pageParams(r, 10)
	sort := r.URL.Query().Get("sort")

	ctx, cancel := reqCtx(r)
	defer cancel()

	ratings, err := rc.Ratings.GetForProduct(ctx, productID, page, limit, sort)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching ratings.")
		return
	}
	utils.JSON(w, http.StatusOK, rc.populateRatings(ctx, ratings))
}
