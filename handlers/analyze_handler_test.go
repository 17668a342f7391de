package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legalease-backend/repository"
	"legalease-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnalyzeRouter(store repository.AnalysisStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewAnalysisService(service.WithAnalysisStore(store))
	handler := NewAnalyzeHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/analyze", handler.Analyze)
	api.GET("/analyses", handler.ListRecent)
	api.GET("/analyses/:id", handler.GetAnalysis)
	return r
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := setupAnalyzeRouter(repository.NewMemoryStore())

	body := `{"text": "This agreement requires payment of $5,000 within 30 days.", "fileName": "deal.pdf"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"source":"fallback"`)
	assert.Contains(t, w.Body.String(), `"documentType"`)
}

func TestAnalyzeEndpointMissingText(t *testing.T) {
	r := setupAnalyzeRouter(repository.NewMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/analyze", strings.NewReader(`{"fileName": "deal.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TEXT")
}

func TestAnalyzeEndpointWhitespaceText(t *testing.T) {
	r := setupAnalyzeRouter(repository.NewMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/analyze", strings.NewReader(`{"text": "   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TEXT")
}

func TestGetAnalysisEndpointInvalidID(t *testing.T) {
	r := setupAnalyzeRouter(repository.NewMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/analyses/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestGetAnalysisEndpointNotFound(t *testing.T) {
	r := setupAnalyzeRouter(repository.NewMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/analyses/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestGetAnalysisEndpointRecovers(t *testing.T) {
	store := repository.NewMemoryStore()
	r := setupAnalyzeRouter(store)

	// Seed one analysis through the API
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/analyze", strings.NewReader(`{"text": "This contract covers consulting services for the client."}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown id recovers to the most recent analysis
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/analyses/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recovered":true`)
}

func TestListRecentEndpoint(t *testing.T) {
	r := setupAnalyzeRouter(repository.NewMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/analyses", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}
