package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductController handles the catalog. A product referenced by any order
// is frozen: update, image replacement and deletion are all rejected.
type ProductController struct {
	Products stores.ProductStore
	Orders   stores.OrderStore
	Carts    stores.CartStore
	Images   utils.ImageStore
	populator
}

// NewProductController creates a new ProductController.
func NewProductController(products stores.ProductStore, orders stores.OrderStore, carts stores.CartStore, comments stores.CommentStore, ratings stores.RatingStore, users stores.UserStore, images utils.ImageStore) *ProductController {
	return &ProductController{
		Products: products,
		Orders:   orders,
		Carts:    carts,
		Images:   images,
		populator: populator{
			users:    users,
			products: products,
			comments: comments,
			ratings:  ratings,
		},
	}
}

// Create adds a catalog entry from a multipart form with an image file.
func (pc *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	file, ok := imageFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	product := models.Product{
		Name:        r.FormValue("name"),
		Source:      strings.ToLower(r.FormValue("source")),
		Category:    strings.ToLower(r.FormValue("category")),
		Description: r.FormValue("description"),
	}
	switch {
	case product.Name == "":
		utils.Error(w, http.StatusBadRequest, "Product name is required.")
		return
	case product.Source == "":
		utils.Error(w, http.StatusBadRequest, "Product source is required.")
		return
	case product.Category == "":
		utils.Error(w, http.StatusBadRequest, "Product category is required.")
		return
	case product.Description == "":
		utils.Error(w, http.StatusBadRequest, "Product description is required.")
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Product price is required.")
		return
	}
	product.Price = price

	ctx, cancel := reqCtx(r)
	defer cancel()

	image, err := pc.Images.Upload(ctx, file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error uploading image.")
		return
	}
	product.Image = image

	if err := pc.Products.Create(ctx, &product); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating product.")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{
		"product": product,
		"message": "Created successfully.",
	})
}

// GetAll lists the catalog with paging and comma-separated source/category
// filters, each product populated with its comments and ratings.
func (pc *ProductController) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, 12)
	filter := stores.ProductFilter{Page: page, Limit: limit}
	if source := r.URL.Query().Get("source"); source != "" {
		filter.Sources = splitTrim(source)
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Categories = splitTrim(category)
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	products, err := pc.Products.GetAll(ctx, filter)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching products.")
		return
	}

	populated := make([]*models.PopulatedProduct, 0, len(products))
	for _, product := range products {
		pp, err := pc.populateProduct(ctx, product)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Error fetching products.")
			return
		}
		populated = append(populated, pp)
	}
	utils.JSON(w, http.StatusOK, populated)
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Count returns the catalog size.
func (pc *ProductController) Count(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	count, err := pc.Products.Count(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error counting products.")
		return
	}
	utils.JSON(w, http.StatusOK, count)
}

// GetByID returns one populated product.
func (pc *ProductController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Product not found.")
		return
	}
	populated, err := pc.populateProduct(ctx, *product)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching product.")
		return
	}
	utils.JSON(w, http.StatusOK, populated)
}

// guardNoOrders rejects the mutation when any order references the product.
// It reports whether the caller may proceed.
func (pc *ProductController) guardNoOrders(w http.ResponseWriter, r *http.Request, id primitive.ObjectID, action string) bool {
	ctx, cancel := reqCtx(r)
	defer cancel()

	exists, err := pc.Orders.ExistsForProduct(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error checking orders.")
		return false
	}
	if exists {
		utils.Error(w, http.StatusConflict, "Can't "+action+" this product. This product has at least one order.")
		return false
	}
	return true
}

// Update overwrites the product fields unless an order references it.
func (pc *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	var upd models.ProductUpdate
	if err := decodeJSON(r, &upd); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	upd.Source = strings.ToLower(upd.Source)
	upd.Category = strings.ToLower(upd.Category)

	if !pc.guardNoOrders(w, r, id, "update") {
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	product, err := pc.Products.Update(ctx, id, upd)
	if err != nil {
		storeError(w, err, "Product not found.")
		return
	}
	populated, err := pc.populateProduct(ctx, *product)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching product.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"product": populated,
		"message": "Product updated successfully.",
	})
}

// UpdateImage replaces the product image unless an order references the
// product. The old image is removed from storage first.
func (pc *ProductController) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	file, ok := imageFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	ctx, cancel := reqCtx(r)
	defer cancel()

	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Product not found.")
		return
	}
	if !pc.guardNoOrders(w, r, id, "update") {
		return
	}

	if err := pc.Images.Destroy(ctx, product.Image.PublicID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error removing old image.")
		return
	}
	image, err := pc.Images.Upload(ctx, file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error uploading image.")
		return
	}

	updated, err := pc.Products.UpdateImage(ctx, id, image)
	if err != nil {
		storeError(w, err, "Product not found.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"product": updated,
		"message": "Product image updated successfully.",
	})
}

// Delete removes a product unless an order references it. Cascade: image
// destroyed, comments and ratings deleted, product pulled from every cart.
// Orders keep the reference forever. The steps are independent writes; no
// transaction spans them.
func (pc *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Product not found.")
		return
	}
	if !pc.guardNoOrders(w, r, id, "delete") {
		return
	}

	if err := pc.Products.Delete(ctx, id); err != nil {
		storeError(w, err, "Product not found.")
		return
	}
	if err := pc.Images.Destroy(ctx, product.Image.PublicID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error removing image.")
		return
	}
	if err := pc.comments.DeleteByProduct(ctx, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting comments.")
		return
	}
	if err := pc.ratings.DeleteByProduct(ctx, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting ratings.")
		return
	}
	if err := pc.Carts.RemoveProductFromAll(ctx, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating carts.")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"message":   "Deleted successfully.",
		"productId": id,
	})
}
