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

// CommentController handles product comments.
type CommentController struct {
	Comments stores.CommentStore
	populator
}

// NewCommentController creates a new CommentController.
func NewCommentController(comments stores.CommentStore, users stores.UserStore) *CommentController {
	return &CommentController{
		Comments:  comments,
		populator: populator{users: users, comments: comments},
	}
}

// Create adds a comment. A user may only comment as themself.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User    string `json:"user"`
		Product string `json:"product"`
		Text    string `json:"text"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	claims := middleware.ClaimsFrom(r)
	if claims == nil || claims.ID != body.User {
		utils.Error(w, http.StatusForbidden, "Access denied. Can't add comment for another user. Only for you.")
		return
	}
	if body.Text == "" {
		utils.Error(w, http.StatusBadRequest, "Please write something.")
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

	comment := &models.Comment{User: userID, Product: productID, Text: body.Text}
	if err := cc.Comments.Create(ctx, comment); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating comment.")
		return
	}
	utils.JSON(w, http.StatusCreated, cc.populateComments(ctx, []models.Comment{*comment})[0])
}

// Update overwrites a comment's text. Owner only.
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	var body struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	comment, err := cc.Comments.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Comment not found.")
		return
	}
	claims := middleware.ClaimsFrom(r)
	if claims == nil || claims.ID != comment.User.Hex() {
		utils.Error(w, http.StatusForbidden, "Access denied. Only the owner of comment.")
		return
	}

	updated, err := cc.Comments.UpdateText(ctx, id, body.Text)
	if err != nil {
		storeError(w, err, "Comment not found.")
		return
	}
	utils.JSON(w, http.StatusOK, cc.populateComments(ctx, []models.Comment{*updated})[0])
}

// Delete removes a comment: its owner, or a privileged role.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	comment, err := cc.Comments.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Comment not found.")
		return
	}
	claims := middleware.ClaimsFrom(r)
	if !middleware.Authorize(claims, comment.User.Hex(), models.RoleAdmin, models.RoleEmployee) {
		utils.Error(w, http.StatusForbidden, "Access denied. Only the owner of comment or admin.")
		return
	}

	if err := cc.Comments.Delete(ctx, id); err != nil {
		storeError(w, err, "Comment not found.")
		return
	}
	utils.Message(w, http.StatusOK, "Deleted successfully.")
}

// GetAll lists every comment.
func (cc *CommentController) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	comments, err := cc.Comments.GetAll(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching comments.")
		return
	}
	utils.JSON(w, http.StatusOK, cc.populateComments(ctx, comments))
}

// Count returns the number of comments.
func (cc *CommentController) Count(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	count, err := cc.Comments.Count(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error counting comments.")
		return
	}
	utils.JSON(w, http.StatusOK, count)
}

// GetForProduct lists a product's comments, newest first by default.
func (cc *CommentController) GetForProduct(w http.ResponseWriter, r *http.Request) {
	productID, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	sort := r.URL.Query().Get("sort")

	ctx, cancel := reqCtx(r)
	defer cancel()

	comments, err := cc.Comments.GetForProduct(ctx, productID, sort)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching comments.")
		return
	}
	utils.JSON(w, http.StatusOK, cc.populateComments(ctx, comments))
}
