package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shop-api/stores"
	"shop-api/utils"
)

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// reqCtx derives the per-request database context.
func reqCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

// storeError maps store failures onto the error taxonomy: not-found, conflict
// on duplicate unique fields, internal otherwise. notFoundMsg names the
// resource for 404 bodies.
func storeError(w http.ResponseWriter, err error, notFoundMsg string) {
	var dup *stores.DuplicateKeyError
	switch {
	case errors.Is(err, stores.ErrNotFound):
		utils.Error(w, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &dup):
		utils.Error(w, http.StatusConflict, fmt.Sprintf("%s already exist.", capitalize(dup.Field)))
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// pageParams reads page/limit query parameters with the given defaults.
func pageParams(r *http.Request, defaultLimit int64) (page, limit int64) {
	page, limit = 1, defaultLimit
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

// imageFile pulls the uploaded "image" field out of a multipart form,
// enforcing the image-only content type and the size cap.
func imageFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(utils.MaxImageSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "No image provided.")
		return nil, false
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "No image provided.")
		return nil, false
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		file.Close()
		utils.Error(w, http.StatusBadRequest, "Unsupported file.")
		return nil, false
	}
	if header.Size > utils.MaxImageSize {
		file.Close()
		utils.Error(w, http.StatusBadRequest, "Image is too large. Max size is 5MB.")
		return nil, false
	}
	return file, true
}
