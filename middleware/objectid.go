package middleware

import (
	"net/http"

	"shop-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateObjectID rejects requests whose {id} path parameter is not a valid
// ObjectID hex string before any lookup runs.
func ValidateObjectID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"]); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid id.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
