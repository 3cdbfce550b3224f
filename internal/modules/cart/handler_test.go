package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewService(0.028, 0, "RM"))
	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)
	return router
}

func TestHandler_Summary(t *testing.T) {
	router := setupRouter()

	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(SummaryRequest{Items: []Item{{ID: "a", Price: 100}}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/summary", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Summary Summary `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 102.80, body.Data.Summary.Total)
}

func TestHandler_Summary_NegativePrice(t *testing.T) {
	router := setupRouter()

	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(SummaryRequest{Items: []Item{{ID: "a", Price: -5}}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/summary", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
