package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"shop-api/middleware"
	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderController handles order placement and lifecycle. An order is an
// immutable snapshot of caller-supplied line items; placing one empties the
// originating cart.
type OrderController struct {
	Orders stores.OrderStore
	Carts  stores.CartStore
	Email  utils.EmailSender
	Log    *slog.Logger
	populator
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders stores.OrderStore, carts stores.CartStore, users stores.UserStore, products stores.ProductStore, comments stores.CommentStore, ratings stores.RatingStore, email utils.EmailSender, log *slog.Logger) *OrderController {
	return &OrderController{
		Orders: orders,
		Carts:  carts,
		Email:  email,
		Log:    log,
		populator: populator{
			users:    users,
			products: products,
			comments: comments,
			ratings:  ratings,
		},
	}
}

// Create places an order for the caller. The line items come from the
// request body as supplied; the client submits its cart's current items.
// After the insert the user's cart is emptied, not deleted. The two writes
// are independent; a crash in between leaves the order placed and the cart
// full.
func (oc *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User            string            `json:"user"`
		Products        []models.CartItem `json:"products"`
		UserPhone       string            `json:"userPhone"`
		ShippingAddress string            `json:"shippingAddress"`
		Notes           string            `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	claims := middleware.ClaimsFrom(r)
	if claims == nil || claims.ID != body.User {
		utils.Error(w, http.StatusForbidden, "Access denied. Can't create order for another user. Only for you.")
		return
	}
	userID, err := primitive.ObjectIDFromHex(body.User)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id.")
		return
	}
	if body.UserPhone == "" {
		utils.Error(w, http.StatusBadRequest, "User phone number is required.")
		return
	}
	if body.ShippingAddress == "" {
		utils.Error(w, http.StatusBadRequest, "Order address is required.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	order := &models.Order{
		User:            userID,
		UserPhone:       body.UserPhone,
		Products:        body.Products,
		ShippingAddress: body.ShippingAddress,
		Notes:           body.Notes,
		Status:          models.StatusPending,
	}
	if err := oc.Orders.Create(ctx, order); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating order.")
		return
	}

	if err := oc.Carts.ClearForUser(ctx, userID); err != nil {
		// The order is already placed; surface nothing to the caller beyond
		// a log line. Reconciliation is a manual sweep.
		oc.Log.Error("clear cart after order", "user", body.User, "order", order.ID.Hex(), "error", err)
	}

	utils.JSON(w, http.StatusCreated, oc.populateOrder(ctx, order))
}

// GetAll lists every order, paged and optionally filtered by status.
func (oc *OrderController) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, 10)
	filter := stores.OrderFilter{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	}
	oc.list(w, r, filter)
}

// GetForUser lists one user's orders: that user, or a privileged role.
func (oc *OrderController) GetForUser(w http.ResponseWriter, r *http.Request) {
	idHex := mux.Vars(r)["id"]
	claims := middleware.ClaimsFrom(r)
	if !middleware.Authorize(claims, idHex, models.RoleAdmin, models.RoleEmployee) {
		utils.Error(w, http.StatusForbidden, "Access denied. Can't get orders for another user. Only for you.")
		return
	}

	userID, _ := primitive.ObjectIDFromHex(idHex)
	page, limit := pageParams(r, 10)
	filter := stores.OrderFilter{
		User:   &userID,
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	}
	oc.list(w, r, filter)
}

func (oc *OrderController) list(w http.ResponseWriter, r *http.Request, filter stores.OrderFilter) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	orders, err := oc.Orders.Find(ctx, filter)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching orders.")
		return
	}

	populated := make([]*models.PopulatedOrder, 0, len(orders))
	for i := range orders {
		populated = append(populated, oc.populateOrder(ctx, &orders[i]))
	}
	utils.JSON(w, http.StatusOK, populated)
}

// GetByID returns one order: its owner, or a privileged role.
func (oc *OrderController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	order, err := oc.Orders.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Order not found.")
		return
	}
	claims := middleware.ClaimsFrom(r)
	if !middleware.Authorize(claims, order.User.Hex(), models.RoleAdmin, models.RoleEmployee) {
		utils.Error(w, http.StatusForbidden, "Access denied. Only owner or admin.")
		return
	}
	utils.JSON(w, http.StatusOK, oc.populateOrder(ctx, order))
}

// UpdateStatus overwrites the order status. No transition legality check:
// any enumerated status may replace any other. The owner is notified by
// email, best effort.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !models.ValidStatus(body.Status) {
		utils.Error(w, http.StatusBadRequest, "Status allowed values: pending, confirmed, shipped, canceled.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	order, err := oc.Orders.UpdateStatus(ctx, id, body.Status)
	if err != nil {
		storeError(w, err, "Order not found.")
		return
	}

	if oc.Email != nil {
		if owner, err := oc.users.GetByID(ctx, order.User); err == nil {
			subject := "Order status updated"
			content := fmt.Sprintf("Dear %s,\n\nYour order (ID: %s) status is now '%s'.\n\nThank you for shopping with us!\n", owner.Username, order.ID.Hex(), order.Status)
			if err := oc.Email.Send(owner.Email, subject, content); err != nil {
				oc.Log.Error("send status email", "order", order.ID.Hex(), "error", err)
			}
		}
	}

	utils.JSON(w, http.StatusOK, oc.populateOrder(ctx, order))
}

// UpdateNote overwrites the order notes.
func (oc *OrderController) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	var body struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	order, err := oc.Orders.UpdateNotes(ctx, id, body.Notes)
	if err != nil {
		storeError(w, err, "Order not found.")
		return
	}
	utils.JSON(w, http.StatusOK, oc.populateOrder(ctx, order))
}

// Delete hard-deletes an order. No archival.
func (oc *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	if err := oc.Orders.Delete(ctx, id); err != nil {
		storeError(w, err, "Order not found.")
		return
	}
	utils.Message(w, http.StatusOK, "Order deleted successfully.")
}
