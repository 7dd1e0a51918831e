package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-api/middleware"
	"shop-api/utils"

	"github.com/stretchr/testify/require"
)

// jsonRequest builds a request with a JSON body and, when claims is non-nil,
// the verified-claims context Authenticate would have attached.
func jsonRequest(t *testing.T, method, target string, body any, claims *utils.Claims) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
	}
	return req
}
