package controllers

import (
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

func newCommentFixture() (*mocks.CommentStore, *CommentController) {
	comments := new(mocks.CommentStore)
	users := new(mocks.UserStore)
	users.On("GetByID", mock.Anything, mock.Anything).Return(nil, stores.ErrNotFound)
	return comments, NewCommentController(comments, users)
}

func TestCreateCommentForAnotherUser(t *testing.T) {
	comments, controller := newCommentFixture()

	body := map[string]any{
		"user":    primitive.NewObjectID().Hex(),
		"product": primitive.NewObjectID().Hex(),
		"text":    "great",
	}
	req := jsonRequest(t, http.MethodPost, "/api/comments", body, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleCustomer})
	rec := httptest.NewRecorder()

	controller.Create(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Can't add comment for another user.")
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCommentRequiresText(t *testing.T) {
	comments, controller := newCommentFixture()
	userID := primitive.NewObjectID()

	body := map[string]any{
		"user":    userID.Hex(),
		"product": primitive.NewObjectID().Hex(),
		"text":    "",
	}
	req := jsonRequest(t, http.MethodPost, "/api/comments", body, &utils.Claims{ID: userID.Hex(), Role: models.RoleCustomer})
	rec := httptest.NewRecorder()

	controller.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please write something.")
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateComment(t *testing.T) {
	comments, controller := newCommentFixture()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.User == userID && c.Product == productID && c.Text == "great product"
	})).Return(nil)

	body := map[string]any{
		"user":    userID.Hex(),
		"product": productID.Hex(),
		"text":    "great product",
	}
	req := jsonRequest(t, http.MethodPost, "/api/comments", body, &utils.Claims{ID: userID.Hex(), Role: models.RoleCustomer})
	rec := httptest.NewRecorder()

	controller.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	comments.AssertExpectations(t)
}

func TestUpdateCommentOwnerOnly(t *testing.T) {
	comments, controller := newCommentFixture()
	owner := primitive.NewObjectID()
	commentID := primitive.NewObjectID()

	comment := &models.Comment{ID: commentID, User: owner, Text: "old"}
	comments.On("GetByID", mock.Anything, commentID).Return(comment, nil)

	// Even an admin may not edit someone else's comment.
	req := jsonRequest(t, http.MethodPut, "/api/comments/"+commentID.Hex(), map[string]any{"text": "new"}, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleAdmin})
	req = mux.SetURLVars(req, map[string]string{"id": commentID.Hex()})
	rec := httptest.NewRecorder()

	controller.Update(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only the owner of comment.")
	comments.AssertNotCalled(t, "UpdateText", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCommentOwnerOrPrivileged(t *testing.T) {
	comments, controller := newCommentFixture()
	owner := primitive.NewObjectID()
	commentID := primitive.NewObjectID()

	comment := &models.Comment{ID: commentID, User: owner, Text: "spam"}
	comments.On("GetByID", mock.Anything, commentID).Return(comment, nil)

	// Another customer is rejected.
	req := jsonRequest(t, http.MethodDelete, "/api/comments/"+commentID.Hex(), nil, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleCustomer})
	req = mux.SetURLVars(req, map[string]string{"id": commentID.Hex()})
	rec := httptest.NewRecorder()
	controller.Delete(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// An employee may moderate.
	comments.On("Delete", mock.Anything, commentID).Return(nil)
	req = jsonRequest(t, http.MethodDelete, "/api/comments/"+commentID.Hex(), nil, &utils.Claims{ID: primitive.NewObjectID().Hex(), Role: models.RoleEmployee})
	req = mux.SetURLVars(req, map[string]string{"id": commentID.Hex()})
	rec = httptest.NewRecorder()
	controller.Delete(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deleted successfully.")
}
