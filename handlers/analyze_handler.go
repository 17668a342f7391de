package handlers

import (
	"errors"
	"net/http"
	"time"

	"legalease-backend/models"
	"legalease-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyzeHandler handles HTTP requests for document analysis
type AnalyzeHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analysisService *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService}
}

// AnalyzeRequest represents the request body for analyzing document text
type AnalyzeRequest struct {
	Text     string `json:"text" binding:"required"`
	FileName string `json:"fileName"`
}

// Analyze handles POST /api/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_TEXT",
				"message": "Request must include non-empty document text",
			},
		})
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeRequest{
		Text:     req.Text,
		FileName: req.FileName,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyDocument) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TEXT",
					"message": "Document text is empty",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ANALYSIS_FAILED",
				"message": "Failed to analyze document",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":           result.Stored.ID,
			"analysis":     result.Stored.Analysis,
			"source":       result.Source,
			"processed_at": result.Stored.CreatedAt.Format(time.RFC3339),
		},
	})
}

// GetAnalysis handles GET /api/analyses/:id
func (h *AnalyzeHandler) GetAnalysis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid analysis id format",
			},
		})
		return
	}

	result, err := h.analysisService.GetAnalysis(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Analysis not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"analysis":  result.Stored,
			"recovered": result.Recovered,
		},
	})
}

// ListRecent handles GET /api/analyses
func (h *AnalyzeHandler) ListRecent(c *gin.Context) {
	analyses, err := h.analysisService.RecentAnalyses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": "Failed to list recent analyses",
			},
		})
		return
	}
	if analyses == nil {
		analyses = []*models.StoredAnalysis{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"analyses": analyses,
			"count":    len(analyses),
		},
	})
}
