package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"legalease-backend/repository"
	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocumentRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	svc := service.NewAnalysisService(service.WithAnalysisStore(repository.NewMemoryStore()))
	handler := NewDocumentHandler(svc, store)

	r := gin.New()
	r.POST("/api/documents/upload", handler.Upload)
	r.GET("/api/documents/:id", handler.Download)
	return r
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadEndpoint(t *testing.T) {
	r := setupDocumentRouter(t)

	body, contentType := multipartUpload(t, "deal.txt", "This agreement requires payment of $5,000 within 30 days.")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"fileName":"deal.txt"`)
	assert.Contains(t, w.Body.String(), `"source":"fallback"`)
}

func TestUploadThenDownload(t *testing.T) {
	r := setupDocumentRouter(t)

	content := "This agreement covers consulting services for the client."
	body, contentType := multipartUpload(t, "deal.txt", content)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ID)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/documents/"+resp.Data.ID, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.String())
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
}

func TestUploadEndpointUnsupportedType(t *testing.T) {
	r := setupDocumentRouter(t)

	body, contentType := multipartUpload(t, "deal.docx", "irrelevant")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_FILE_TYPE")
}

func TestUploadEndpointEmptyDocument(t *testing.T) {
	r := setupDocumentRouter(t)

	body, contentType := multipartUpload(t, "blank.txt", "   ")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMPTY_DOCUMENT")
}

func TestUploadEndpointMissingFile(t *testing.T) {
	r := setupDocumentRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/documents/upload", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestDownloadEndpointInvalidID(t *testing.T) {
	r := setupDocumentRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/documents/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}
