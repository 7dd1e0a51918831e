package controllers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-api/mocks"
	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type orderFixture struct {
	orders     *mocks.OrderStore
	carts      *mocks.CartStore
	users      *mocks.UserStore
	email      *mocks.EmailSender
	controller *OrderController
}

func newOrderFixture() *orderFixture {
	orders := new(mocks.OrderStore)
	carts := new(mocks.CartStore)
	users := new(mocks.UserStore)
	products := new(mocks.ProductStore)
	comments := new(mocks.CommentStore)
	ratings := new(mocks.RatingStore)
	email := new(mocks.EmailSender)

	products.On("GetByID", mock.Anything, mock.Anything).Return(nil, stores.ErrNotFound)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &orderFixture{
		orders:     orders,
		carts:      carts,
		users:      users,
		email:      email,
		controller: NewOrderController(orders, carts, users, products, comments, ratings, email, log),
	}
}

func TestCreateOrderEmptiesCart(t *testing.T) {
	f := newOrderFixture()
	userID := primitive.NewObjectID()
	product := primitive.NewObjectID()

	f.users.On("GetByID", mock.Anything, userID).Return(nil, stores.ErrNotFound)
	f.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.User == userID && o.Status == models.StatusPending && len(o.Products) == 1
	})).Return(nil)
	f.carts.On("ClearForUser", mock.Anything, userID).Return(nil)

	body := map[string]any{
		"user":            userID.Hex(),
		"products":        []map[string]any{{"product": product.Hex(), "quantity": 2}},
		"userPhone":       "0501234567",
		"shippingAddress": "10 Main St",
	}
	req := jsonRequest(t, http.MethodPost, "/api/orders", body, &utils.Claims{ID: userID.Hex(), Role: models.RoleCustomer})
	rec := httptest.NewRecorder()

	f.controller.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	f.orders.AssertExpectations(t)
	f.carts.AssertCalled(t, "ClearForUser", mock.Anything, userID)
}

func TestCreateOrderForAnotherUser(t *testing.T) {
	f := newOrderFixture()

	body := map[string]any{
		"user":            primitive.NewObjectID().Hex(),
		"userPhone":       "0501234567",
		"shippingAddress": "10 Main St",
	}
	req := jsonRequest(t, http.MethodPost, "/api/orders", body, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleCustomer})
	rec := httptest.NewRecorder()

	f.controller.Create(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Can't create order for another user.")
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderRequiresPhoneAndAddress(t *testing.T) {
	f := newOrderFixture()
	userID := primitive.NewObjectID()
	claims := &utils.Claims{ID: userID.Hex(), Role: models.RoleCustomer}

	req := jsonRequest(t, http.MethodPost, "/api/orders", map[string]any{
		"user":            userID.Hex(),
		"shippingAddress": "10 Main St",
	}, claims)
	rec := httptest.NewRecorder()
	f.controller.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User phone number is required.")

	req = jsonRequest(t, http.MethodPost, "/api/orders", map[string]any{
		"user":      userID.Hex(),
		"userPhone": "0501234567",
	}, claims)
	rec = httptest.NewRecorder()
	f.controller.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order address is required.")
}

func TestCreateOrderStillSucceedsWhenCartClearFails(t *testing.T) {
	f := newOrderFixture()
	userID := primitive.NewObjectID()

	f.users.On("GetByID", mock.Anything, userID).Return(nil, stores.ErrNotFound)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.carts.On("ClearForUser", mock.Anything, userID).Return(assert.AnError)

	body := map[string]any{
		"user":            userID.Hex(),
		"userPhone":       "0501234567",
		"shippingAddress": "10 Main St",
	}
	req := jsonRequest(t, http.MethodPost, "/api/orders", body, &utils.Claims{ID: userID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetOrderByIDOwnerOrPrivileged(t *testing.T) {
	f := newOrderFixture()
	owner := primitive.NewObjectID()
	orderID := primitive.NewObjectID()

	order := &models.Order{ID: orderID, User: owner, Status: models.StatusPending}
	f.orders.On("GetByID", mock.Anything, orderID).Return(order, nil)
	f.users.On("GetByID", mock.Anything, owner).Return(nil, stores.ErrNotFound)

	// Another customer is rejected.
	req := jsonRequest(t, http.MethodGet, "/api/orders/"+orderID.Hex(), nil, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleCustomer})
	req = mux.SetURLVars(req, map[string]string{"id": orderID.Hex()})
	rec := httptest.NewRecorder()
	f.controller.GetByID(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only owner or admin.")

	// An employee is allowed.
	req = jsonRequest(t, http.MethodGet, "/api/orders/"+orderID.Hex(), nil, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleEmployee})
	req = mux.SetURLVars(req, map[string]string{"id": orderID.Hex()})
	rec = httptest.NewRecorder()
	f.controller.GetByID(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The owner is allowed.
	req = jsonRequest(t, http.MethodGet, "/api/orders/"+orderID.Hex(), nil, &utils.Claims{ID: owner.Hex(), Role: models.RoleCustomer})
	req = mux.SetURLVars(req, map[string]string{"id": orderID.Hex()})
	rec = httptest.NewRecorder()
	f.controller.GetByID(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newOrderFixture()
	orderID := primitive.NewObjectID()

	req := jsonRequest(t, http.MethodPut, "/api/orders/update-status/"+orderID.Hex(), map[string]any{"status": "delivered"}, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleAdmin})
	req = mux.SetURLVars(req, map[string]string{"id": orderID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status allowed values: pending, confirmed, shipped, canceled.")
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusNotifiesOwner(t *testing.T) {
	f := newOrderFixture()
	ownerID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()

	owner := &models.User{ID: ownerID, Username: "jane", Email: "jane@example.com", Role: models.RoleCustomer}
	updated := &models.Order{ID: orderID, User: ownerID, Status: models.StatusShipped}

	f.orders.On("UpdateStatus", mock.Anything, orderID, models.StatusShipped).Return(updated, nil)
	f.users.On("GetByID", mock.Anything, ownerID).Return(owner, nil)
	f.email.On("Send", "jane@example.com", mock.Anything, mock.Anything).Return(nil)

	req := jsonRequest(t, http.MethodPut, "/api/orders/update-status/"+orderID.Hex(), map[string]any{"status": models.StatusShipped}, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleEmployee})
	req = mux.SetURLVars(req, map[string]string{"id": orderID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.email.AssertExpectations(t)
}

func TestGetOrdersForAnotherUser(t *testing.T) {
	f := newOrderFixture()
	target := primitive.NewObjectID()

	req := jsonRequest(t, http.MethodGet, "/api/orders/user/"+target.Hex(), nil, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleCustomer})
	req = mux.SetURLVars(req, map[string]string{"id": target.Hex()})
	rec := httptest.NewRecorder()

	f.controller.GetForUser(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	f.orders.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}
