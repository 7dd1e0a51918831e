// Package mocks holds hand-written testify doubles for the store and
// service interfaces controllers depend on.
package mocks

import (
	"context"
	"io"

	"shop-api/models"
	"shop-api/stores"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore struct{ mock.Mock }

func (m *UserStore) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserStore) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}
func (m *UserStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *UserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, username, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, id, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserStore) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserStore) SetCart(ctx context.Context, userID, cartID primitive.ObjectID) error {
	return m.Called(ctx, userID, cartID).Error(0)
}
func (m *UserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type ProductStore struct{ mock.Mock }

func (m *ProductStore) Create(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *ProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *ProductStore) GetAll(ctx context.Context, f stores.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
func (m *ProductStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *ProductStore) Update(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) (*models.Product, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *ProductStore) UpdateImage(ctx context.Context, id primitive.ObjectID, image models.Image) (*models.Product, error) {
	args := m.Called(ctx, id, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *ProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type CartStore struct{ mock.Mock }

func (m *CartStore) Create(ctx context.Context, c *models.Cart) error {
	return m.Called(ctx, c).Error(0)
}
func (m *CartStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}
func (m *CartStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}
func (m *CartStore) SetItems(ctx context.Context, cartID primitive.ObjectID, items []models.CartItem) error {
	return m.Called(ctx, cartID, items).Error(0)
}
func (m *CartStore) ClearForUser(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *CartStore) RemoveProductFromAll(ctx context.Context, productID primitive.ObjectID) error {
	return m.Called(ctx, productID).Error(0)
}
func (m *CartStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}

type OrderStore struct{ mock.Mock }

func (m *OrderStore) Create(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *OrderStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}
func (m *OrderStore) Find(ctx context.Context, f stores.OrderFilter) ([]models.Order, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}
func (m *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}
func (m *OrderStore) UpdateNotes(ctx context.Context, id primitive.ObjectID, notes string) (*models.Order, error) {
	args := m.Called(ctx, id, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}
func (m *OrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *OrderStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *OrderStore) ExistsForProduct(ctx context.Context, productID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

type CommentStore struct{ mock.Mock }

func (m *CommentStore) Create(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}
func (m *CommentStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}
func (m *CommentStore) UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}
func (m *CommentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *CommentStore) GetAll(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}
func (m *CommentStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *CommentStore) GetForProduct(ctx context.Context, productID primitive.ObjectID, sort string) ([]models.Comment, error) {
	args := m.Called(ctx, productID, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}
func (m *CommentStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *CommentStore) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	return m.Called(ctx, productID).Error(0)
}

type RatingStore struct{ mock.Mock }

func (m *RatingStore) Create(ctx context.Context, r *models.Rating) error {
	return m.Called(ctx, r).Error(0)
}
func (m *RatingStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}
func (m *RatingStore) GetByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.Rating, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}
func (m *RatingStore) UpdateValue(ctx context.Context, id primitive.ObjectID, value int) (*models.Rating, error) {
	args := m.Called(ctx, id, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}
func (m *RatingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RatingStore) GetAll(ctx context.Context) ([]models.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}
func (m *RatingStore) GetForProduct(ctx context.Context, productID primitive.ObjectID, page, limit int64, sort string) ([]models.Rating, error) {
	args := m.Called(ctx, productID, page, limit, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}
func (m *RatingStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *RatingStore) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	return m.Called(ctx, productID).Error(0)
}

type ClientStore struct{ mock.Mock }

func (m *ClientStore) Create(ctx context.Context, c *models.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *ClientStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *ClientStore) GetByName(ctx context.Context, name string) (*models.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *ClientStore) GetAll(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}
func (m *ClientStore) Update(ctx context.Context, id primitive.ObjectID, name string, image *models.Image) (*models.Client, error) {
	args := m.Called(ctx, id, name, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *ClientStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type ImageStore struct{ mock.Mock }

func (m *ImageStore) Upload(ctx context.Context, file io.Reader) (models.Image, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(models.Image), args.Error(1)
}
func (m *ImageStore) Destroy(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

type EmailSender struct{ mock.Mock }

func (m *EmailSender) Send(toEmail, subject, body string) error {
	return m.Called(toEmail, subject, body).Error(0)
}
