package controllers

import (
	"encoding/json"
	"net/http"

	"shop-api/middleware"
	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles account management. Deleting a user cascades into
// every record the user owns.
type UserController struct {
	Users    stores.UserStore
	Comments stores.CommentStore
	Ratings  stores.RatingStore
	Carts    stores.CartStore
	Orders   stores.OrderStore
}

// NewUserController creates a new UserController.
func NewUserController(users stores.UserStore, comments stores.CommentStore, ratings stores.RatingStore, carts stores.CartStore, orders stores.OrderStore) *UserController {
	return &UserController{Users: users, Comments: comments, Ratings: ratings, Carts: carts, Orders: orders}
}

// GetAll lists every account.
func (uc *UserController) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	users, err := uc.Users.GetAll(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching users.")
		return
	}
	utils.JSON(w, http.StatusOK, users)
}

// Count returns the number of accounts.
func (uc *UserController) Count(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	count, err := uc.Users.Count(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error counting users.")
		return
	}
	utils.JSON(w, http.StatusOK, count)
}

// GetProfile returns a single account without its password.
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	user, err := uc.Users.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "User not found.")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// UpdateProfile lets a user change their own username and/or password.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	hash := ""
	if body.Password != "" {
		if len(body.Password) < 6 {
			utils.Error(w, http.StatusBadRequest, "Password must be at least 6 characters long.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Error hashing password.")
			return
		}
		hash = string(hashed)
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	user, err := uc.Users.UpdateProfile(ctx, id, body.Username, hash)
	if err != nil {
		storeError(w, err, "User not found.")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// UpdateRole moves a user to another role. Admin only.
func (uc *UserController) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !models.ValidRole(body.Role) {
		utils.Error(w, http.StatusBadRequest, "Role is either admin, employee, or customer.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	user, err := uc.Users.UpdateRole(ctx, id, body.Role)
	if err != nil {
		storeError(w, err, "User not found.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"message": "User role changed successfully.",
	})
}

// canDeleteUser is the deletion matrix: an admin may delete anyone, an
// employee may delete themself or any customer, a customer only themself.
func canDeleteUser(claims *utils.Claims, target *models.User) bool {
	if claims == nil {
		return false
	}
	self := claims.ID == target.ID.Hex()
	switch claims.Role {
	case models.RoleAdmin:
		return true
	case models.RoleEmployee:
		return self || target.Role == models.RoleCustomer
	case models.RoleCustomer:
		return self
	}
	return false
}

// Delete removes an account and cascades into the user's comments, ratings,
// carts and orders. The deletes are independent writes with no transaction;
// a failure partway leaves earlier deletes applied.
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	claims := middleware.ClaimsFrom(r)

	ctx, cancel := reqCtx(r)
	defer cancel()

	user, err := uc.Users.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "User not found.")
		return
	}
	if !canDeleteUser(claims, user) {
		utils.Error(w, http.StatusForbidden, "Access denied.")
		return
	}

	if err := uc.Comments.DeleteByUser(ctx, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting comments.")
		return
	}
	if err := uc.Ratings.DeleteByUser(ctx, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting ratings.")
		return
	}
	if err := uc.Carts.DeleteByUser(ctx, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting carts.")
		return
	}
	if err := uc.Orders.DeleteByUser(ctx, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting orders.")
		return
	}
	if err := uc.Users.Delete(ctx, id); err != nil {
		storeError(w, err, "User not found.")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"userId":   id,
		"username": user.Username,
		"message":  "Deleted successfully.",
	})
}
