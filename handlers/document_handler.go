package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"legalease-backend/ingest"
	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploads above this size are rejected before any processing
const maxUploadSize = 10 << 20 // 10 MB

// DocumentHandler handles HTTP requests for document upload and retrieval
type DocumentHandler struct {
	analysisService *service.AnalysisService
	storage         storage.Storage
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(analysisService *service.AnalysisService, store storage.Storage) *DocumentHandler {
	return &DocumentHandler{
		analysisService: analysisService,
		storage:         store,
	}
}

// Upload handles POST /api/documents/upload. The original file is
// retained under a pre-generated id so the analysis record can point
// back at it.
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Request must include a file",
			},
		})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": "File exceeds the 10MB upload limit",
			},
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" && ext != ".txt" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILE_TYPE",
				"message": "Only PDF and plain text documents are supported",
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to read uploaded file",
			},
		})
		return
	}
	defer file.Close()

	text, err := ingest.ExtractText(fileHeader.Filename, file)
	if err != nil {
		code := "UNREADABLE_DOCUMENT"
		if errors.Is(err, ingest.ErrEmptyDocument) {
			code = "EMPTY_DOCUMENT"
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	documentID := uuid.New()

	var storagePath string
	if h.storage != nil {
		if _, err := file.Seek(0, 0); err == nil {
			if path, err := h.storage.Upload(c.Request.Context(), documentID, fileHeader.Filename, file); err == nil {
				storagePath = path
			}
		}
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeRequest{
		ID:          documentID,
		Text:        text,
		FileName:    fileHeader.Filename,
		StoragePath: storagePath,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ANALYSIS_FAILED",
				"message": "Failed to analyze document",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":       result.Stored.ID,
			"fileName": result.Stored.FileName,
			"analysis": result.Stored.Analysis,
			"source":   result.Source,
		},
	})
}

// Download handles GET /api/documents/:id, streaming the retained
// original document for a stored analysis.
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document id format",
			},
		})
		return
	}

	result, err := h.analysisService.GetAnalysis(c.Request.Context(), id)
	if err != nil || result.Recovered || result.Stored.StoragePath == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	if h.storage == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document storage is not configured",
			},
		})
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), result.Stored.StoragePath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found in storage",
			},
		})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+result.Stored.FileName+`"`)
	c.DataFromReader(http.StatusOK, -1, documentContentType(result.Stored.FileName), reader, nil)
}

func documentContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
