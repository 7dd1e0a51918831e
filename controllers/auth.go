package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthController handles registration and login.
type AuthController struct {
	Users stores.UserStore
	Carts stores.CartStore
}

// NewAuthController creates a new AuthController.
func NewAuthController(users stores.UserStore, carts stores.CartStore) *AuthController {
	return &AuthController{Users: users, Carts: carts}
}

// Register creates an account plus its empty cart. New accounts are always
// customers.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	switch {
	case body.Username == "":
		utils.Error(w, http.StatusBadRequest, "Username is required.")
		return
	case len(body.Username) < 3:
		utils.Error(w, http.StatusBadRequest, "Username must be at least 3 characters.")
		return
	case body.Email == "":
		utils.Error(w, http.StatusBadRequest, "Email is required.")
		return
	case !models.ValidEmail(body.Email):
		utils.Error(w, http.StatusBadRequest, "Please provide a valid email address.")
		return
	case body.Password == "":
		utils.Error(w, http.StatusBadRequest, "Password is required.")
		return
	case len(body.Password) < 6:
		utils.Error(w, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error hashing password.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	user := &models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}
	if err := ac.Users.Create(ctx, user); err != nil {
		storeError(w, err, "User not found.")
		return
	}

	cart := &models.Cart{User: user.ID, Items: []models.CartItem{}}
	if err := ac.Carts.Create(ctx, cart); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating cart.")
		return
	}
	if err := ac.Users.SetCart(ctx, user.ID, cart.ID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error linking cart.")
		return
	}

	utils.Message(w, http.StatusCreated, "Account created successfully.")
}

// Login checks credentials and issues a signed token carrying the user's id
// and role.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	user, err := ac.Users.GetByEmail(ctx, strings.ToLower(creds.Email))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Incorrect email.")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		utils.Error(w, http.StatusBadRequest, "Incorrect password.")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error generating token.")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"_id":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"cart":     user.Cart,
		"token":    token,
	})
}
