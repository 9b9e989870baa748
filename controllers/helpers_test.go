package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mentorhub-chat/auth"
	"mentorhub-chat/controllers"
	"mentorhub-chat/routes"
	"mentorhub-chat/store"
)

// setup wires a fresh in-memory store behind the real route table, the
// same way main does at startup.
func setup(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	controllers.Store = mem
	require.NoError(t, store.SeedUsers(mem))
	require.NoError(t, store.SeedDashboard(mem))

	r := gin.New()
	routes.ChatRouter(r)
	return r, mem
}

func bearer(t *testing.T, username string) string {
	t.Helper()
	token, err := auth.GenerateToken(username, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
