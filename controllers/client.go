package controllers

import (
	"errors"
	"net/http"

	"shop-api/models"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientController handles the showcase clients: unique names with a hosted
// picture, displayed on the storefront.
type ClientController struct {
	Clients stores.ClientStore
	Images  utils.ImageStore
}

// NewClientController creates a new ClientController.
func NewClientController(clients stores.ClientStore, images utils.ImageStore) *ClientController {
	return &ClientController{Clients: clients, Images: images}
}

// Create adds a showcase client from a multipart form.
func (cc *ClientController) Create(w http.ResponseWriter, r *http.Request) {
	file, ok := imageFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		utils.Error(w, http.StatusBadRequest, "Client name is required.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	if _, err := cc.Clients.GetByName(ctx, name); err == nil {
		utils.Error(w, http.StatusConflict, "This client already exists.")
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		utils.Error(w, http.StatusInternalServerError, "Error fetching client.")
		return
	}

	image, err := cc.Images.Upload(ctx, file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error uploading image.")
		return
	}

	client := &models.Client{Name: name, Image: image}
	if err := cc.Clients.Create(ctx, client); err != nil {
		storeError(w, err, "Client not found.")
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{
		"client":  client,
		"message": "Created successfully.",
	})
}

// GetAll lists the showcase.
func (cc *ClientController) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	clients, err := cc.Clients.GetAll(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching clients.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"clients": clients})
}

// GetByID returns one showcase client.
func (cc *ClientController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	client, err := cc.Clients.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Client not found.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"client": client})
}

// Update changes the name and/or replaces the picture. Replacing the
// picture destroys the old one first.
func (cc *ClientController) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	if err := r.ParseMultipartForm(utils.MaxImageSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx, cancel := reqCtx(r)
	defer cancel()

	client, err := cc.Clients.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Client not found.")
		return
	}

	var image *models.Image
	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if err := cc.Images.Destroy(ctx, client.Image.PublicID); err != nil {
			utils.Error(w, http.StatusInternalServerError, "Error removing old image.")
			return
		}
		uploaded, err := cc.Images.Upload(ctx, file)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Error uploading image.")
			return
		}
		image = &uploaded
	}

	updated, err := cc.Clients.Update(ctx, id, r.FormValue("name"), image)
	if err != nil {
		storeError(w, err, "Client not found.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"client":  updated,
		"message": "Updated successfully.",
	})
}

// Delete removes a showcase client and its picture.
func (cc *ClientController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["id"])

	ctx, cancel := reqCtx(r)
	defer cancel()

	client, err := cc.Clients.GetByID(ctx, id)
	if err != nil {
		storeError(w, err, "Client not found.")
		return
	}
	if err := cc.Images.Destroy(ctx, client.Image.PublicID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error removing image.")
		return
	}
	if err := cc.Clients.Delete(ctx, id); err != nil {
		storeError(w, err, "Client not found.")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"client":  client,
		"message": "Deleted successfully.",
	})
}
