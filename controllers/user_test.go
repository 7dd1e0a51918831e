package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-api/mocks"
	"shop-api/models"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userFixture struct {
	users      *mocks.UserStore
	comments   *mocks.CommentStore
	ratings    *mocks.RatingStore
	carts      *mocks.CartStore
	orders     *mocks.OrderStore
	controller *UserController
}

func newUserFixture() *userFixture {
	users := new(mocks.UserStore)
	comments := new(mocks.CommentStore)
	ratings := new(mocks.RatingStore)
	carts := new(mocks.CartStore)
	orders := new(mocks.OrderStore)
	return &userFixture{
		users:      users,
		comments:   comments,
		ratings:    ratings,
		carts:      carts,
		orders:     orders,
		controller: NewUserController(users, comments, ratings, carts, orders),
	}
}

func TestCanDeleteUser(t *testing.T) {
	selfID := primitive.NewObjectID()
	otherCustomer := &models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	otherEmployee := &models.User{ID: primitive.NewObjectID(), Role: models.RoleEmployee}
	otherAdmin := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	self := &models.User{ID: selfID, Role: models.RoleEmployee}

	tests := []struct {
		name   string
		claims *utils.Claims
		target *models.User
		want   bool
	}{
		{"nil claims", nil, otherCustomer, false},
		{"admin deletes customer", &utils.Claims{ID: selfID.Hex(), Role: models.RoleAdmin}, otherCustomer, true},
		{"admin deletes employee", &utils.Claims{ID: selfID.Hex(), Role: models.RoleAdmin}, otherEmployee, true},
		{"admin deletes admin", &utils.Claims{ID: selfID.Hex(), Role: models.RoleAdmin}, otherAdmin, true},
		{"employee deletes customer", &utils.Claims{ID: selfID.Hex(), Role: models.RoleEmployee}, otherCustomer, true},
		{"employee deletes self", &utils.Claims{ID: selfID.Hex(), Role: models.RoleEmployee}, self, true},
		{"employee deletes employee", &utils.Claims{ID: selfID.Hex(), Role: models.RoleEmployee}, otherEmployee, false},
		{"employee deletes admin", &utils.Claims{ID: selfID.Hex(), Role: models.RoleEmployee}, otherAdmin, false},
		{"customer deletes self", &utils.Claims{ID: selfID.Hex(), Role: models.RoleCustomer}, self, true},
		{"customer deletes other", &utils.Claims{ID: selfID.Hex(), Role: models.RoleCustomer}, otherCustomer, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canDeleteUser(tt.claims, tt.target))
		})
	}
}

func TestDeleteUserCascades(t *testing.T) {
	f := newUserFixture()
	targetID := primitive.NewObjectID()

	target := &models.User{ID: targetID, Username: "jane", Role: models.RoleCustomer}
	f.users.On("GetByID", mock.Anything, targetID).Return(target, nil)
	f.comments.On("DeleteByUser", mock.Anything, targetID).Return(nil)
	f.ratings.On("DeleteByUser", mock.Anything, targetID).Return(nil)
	f.carts.On("DeleteByUser", mock.Anything, targetID).Return(nil)
	f.orders.On("DeleteByUser", mock.Anything, targetID).Return(nil)
	f.users.On("Delete", mock.Anything, targetID).Return(nil)

	req := jsonRequest(t, http.MethodDelete, "/api/users/"+targetID.Hex(), nil, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleAdmin})
	req = mux.SetURLVars(req, map[string]string{"id": targetID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane")
	f.users.AssertExpectations(t)
	f.comments.AssertExpectations(t)
	f.ratings.AssertExpectations(t)
	f.carts.AssertExpectations(t)
	f.orders.AssertExpectations(t)
}

func TestDeleteUserForbidden(t *testing.T) {
	f := newUserFixture()
	targetID := primitive.NewObjectID()

	target := &models.User{ID: targetID, Username: "jane", Role: models.RoleEmployee}
	f.users.On("GetByID", mock.Anything, targetID).Return(target, nil)

	req := jsonRequest(t, http.MethodDelete, "/api/users/"+targetID.Hex(), nil, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleEmployee})
	req = mux.SetURLVars(req, map[string]string{"id": targetID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.Delete(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	f.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.comments.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
}

func TestUpdateRoleValidation(t *testing.T) {
	f := newUserFixture()
	targetID := primitive.NewObjectID()

	req := jsonRequest(t, http.MethodPut, "/api/users/update-role/"+targetID.Hex(), map[string]any{"role": "manager"}, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleAdmin})
	req = mux.SetURLVars(req, map[string]string{"id": targetID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.UpdateRole(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Role is either admin, employee, or customer.")
	f.users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfileShortPassword(t *testing.T) {
	f := newUserFixture()
	targetID := primitive.NewObjectID()

	req := jsonRequest(t, http.MethodPut, "/api/users/profile/"+targetID.Hex(), map[string]any{"password": "abc"}, &utils.Claims{ID: targetID.Hex(), Role: models.RoleCustomer})
	req = mux.SetURLVars(req, map[string]string{"id": targetID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 6 characters long.")
	f.users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfileKeepsPasswordWhenOmitted(t *testing.T) {
	f := newUserFixture()
	targetID := primitive.NewObjectID()

	updated := &models.User{ID: targetID, Username: "newname", Role: models.RoleCustomer}
	f.users.On("UpdateProfile", mock.Anything, targetID, "newname", "").Return(updated, nil)

	req := jsonRequest(t, http.MethodPut, "/api/users/profile/"+targetID.Hex(), map[string]any{"username": "newname"}, &utils.Claims{ID: targetID.Hex(), Role: models.RoleCustomer})
	req = mux.SetURLVars(req, map[string]string{"id": targetID.Hex()})
	rec := httptest.NewRecorder()

	f.controller.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.users.AssertExpectations(t)
}
