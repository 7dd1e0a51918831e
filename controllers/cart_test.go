package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-api/mocks"
	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type cartFixture struct {
	carts      *mocks.CartStore
	controller *CartController
}

func newCartFixture() *cartFixture {
	carts := new(mocks.CartStore)
	users := new(mocks.UserStore)
	products := new(mocks.ProductStore)
	comments := new(mocks.CommentStore)
	ratings := new(mocks.RatingStore)

	// Populate lookups tolerate missing documents; let them all miss so the
	// tests only pin down the cart writes.
	users.On("GetByID", mock.Anything, mock.Anything).Return(nil, stores.ErrNotFound)
	products.On("GetByID", mock.Anything, mock.Anything).Return(nil, stores.ErrNotFound)

	return &cartFixture{
		carts:      carts,
		controller: NewCartController(carts, users, products, comments, ratings),
	}
}

func TestAddItemAccumulatesExistingLine(t *testing.T) {
	f := newCartFixture()
	owner := primitive.NewObjectID()
	cartID := primitive.NewObjectID()
	product := primitive.NewObjectID()

	cart := &models.Cart{
		ID:    cartID,
		User:  owner,
		Items: []models.CartItem{{Product: product, Quantity: 2}},
	}
	f.carts.On("GetByID", mock.Anything, cartID).Return(cart, nil)
	f.carts.On("SetItems", mock.Anything, cartID, mock.MatchedBy(func(items []models.CartItem) bool {
		return len(items) == 1 && items[0].Product == product && items[0].Quantity == 5
	})).Return(nil)

	body := map[string]any{
		"cartId":   cartID.Hex(),
		"product":  product.Hex(),
		"quantity": 3,
	}
	req := jsonRequest(t, http.MethodPut, "/api/carts/add", body, &utils.Claims{ID: owner.Hex(), Role: models.RoleCustomer})
	rec := httptest.NewRecorder()

	f.controller.AddItem(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item added successfully.")
	f.carts.AssertExpectations(t)
}

func TestAddItemRejectsNonOwner(t *testing.T) {
	f := newCartFixture()
	owner := primitive.NewObjectID()
	cartID := primitive.NewObjectID()
	product := primitive.NewObjectID()

	cart := &models.Cart{ID: cartID, User: owner, Items: []models.CartItem{}}
	f.carts.On("GetByID", mock.Anything, cartID).Return(cart, nil)

	body := map[string]any{
		"cartId":   cartID.Hex(),
		"product":  product.Hex(),
		"quantity": 1,
	}
	req := jsonRequest(t, http.MethodPut, "/api/carts/add", body, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleCustomer})
	rec := httptest.NewRecorder()

	f.controller.AddItem(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only the owner of the cart.")
	f.carts.AssertNotCalled(t, "SetItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddItemCartNotFound(t *testing.T) {
	f := newCartFixture()
	cartID := primitive.NewObjectID()

	f.carts.On("GetByID", mock.Anything, cartID).Return(nil, stores.ErrNotFound)

	body := map[string]any{
		"cartId":   cartID.Hex(),
		"product":  primitive.NewObjectID().Hex(),
		"quantity": 1,
	}
	req := jsonRequest(t, http.MethodPut, "/api/carts/add", body, &utils.Claims{ID: primitive.NewObjectID().Hex()})
	rec := httptest.NewRecorder()

	f.controller.AddItem(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart not found.")
}

func TestRemoveItemNotInCart(t *testing.T) {
	f := newCartFixture()
	owner := primitive.NewObjectID()
	cartID := primitive.NewObjectID()

	cart := &models.Cart{ID: cartID, User: owner, Items: []models.CartItem{}}
	f.carts.On("GetByID", mock.Anything, cartID).Return(cart, nil)

	body := map[string]any{
		"cartId":  cartID.Hex(),
		"product": primitive.NewObjectID().Hex(),
	}
	req := jsonRequest(t, http.MethodPut, "/api/carts/remove", body, &utils.Claims{ID: owner.Hex()})
	rec := httptest.NewRecorder()

	f.controller.RemoveItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not in the cart.")
}

func TestAdjustQuantityDecreaseRemovesLine(t *testing.T) {
	f := newCartFixture()
	owner := primitive.NewObjectID()
	cartID := primitive.NewObjectID()
	product := primitive.NewObjectID()

	cart := &models.Cart{
		ID:    cartID,
		User:  owner,
		Items: []models.CartItem{{Product: product, Quantity: 2}},
	}
	f.carts.On("GetByID", mock.Anything, cartID).Return(cart, nil)
	f.carts.On("SetItems", mock.Anything, cartID, mock.MatchedBy(func(items []models.CartItem) bool {
		return len(items) == 0
	})).Return(nil)

	body := map[string]any{
		"cartId":   cartID.Hex(),
		"product":  product.Hex(),
		"quantity": 5,
		"type":     models.AdjustDecrease,
	}
	req := jsonRequest(t, http.MethodPut, "/api/carts/inc-dec-quantity", body, &utils.Claims{ID: owner.Hex()})
	rec := httptest.NewRecorder()

	f.controller.AdjustQuantity(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.carts.AssertExpectations(t)
}

func TestAdjustQuantityInvalidType(t *testing.T) {
	f := newCartFixture()
	owner := primitive.NewObjectID()
	cartID := primitive.NewObjectID()
	product := primitive.NewObjectID()

	cart := &models.Cart{
		ID:    cartID,
		User:  owner,
		Items: []models.CartItem{{Product: product, Quantity: 2}},
	}
	f.carts.On("GetByID", mock.Anything, cartID).Return(cart, nil)

	body := map[string]any{
		"cartId":   cartID.Hex(),
		"product":  product.Hex(),
		"quantity": 1,
		"type":     "double",
	}
	req := jsonRequest(t, http.MethodPut, "/api/carts/inc-dec-quantity", body, &utils.Claims{ID: owner.Hex()})
	rec := httptest.NewRecorder()

	f.controller.AdjustQuantity(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid operation.")
	f.carts.AssertNotCalled(t, "SetItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustQuantityProductMissing(t *testing.T) {
	f := newCartFixture()
	owner := primitive.NewObjectID()
	cartID := primitive.NewObjectID()

	cart := &models.Cart{ID: cartID, User: owner, Items: []models.CartItem{}}
	f.carts.On("GetByID", mock.Anything, cartID).Return(cart, nil)

	body := map[string]any{
		"cartId":   cartID.Hex(),
		"product":  primitive.NewObjectID().Hex(),
		"quantity": 1,
		"type":     models.AdjustIncrease,
	}
	req := jsonRequest(t, http.MethodPut, "/api/carts/inc-dec-quantity", body, &utils.Claims{ID: owner.Hex()})
	rec := httptest.NewRecorder()

	f.controller.AdjustQuantity(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not in the cart.")
}
