package handlers

import (
	"net/http"

	"legalease-backend/models"
	"legalease-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles HTTP requests for document conversations
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the request body for a chat turn
type ChatRequest struct {
	Messages   []models.ChatMessage       `json:"messages" binding:"required"`
	AnalysisID string                     `json:"analysisId"`
	Analysis   *models.StructuredAnalysis `json:"analysis"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_MESSAGES",
				"message": "Request must include at least one message",
			},
		})
		return
	}

	serviceReq := service.ChatRequest{
		Messages: req.Messages,
		Analysis: req.Analysis,
	}
	// A malformed analysis id is not an error here; the conversation just
	// runs without stored document context.
	if req.AnalysisID != "" {
		if id, err := uuid.Parse(req.AnalysisID); err == nil {
			serviceReq.AnalysisID = &id
		}
	}

	reply, err := h.chatService.Respond(c.Request.Context(), serviceReq)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_MESSAGES",
				"message": "Conversation has no messages",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"content": reply,
		},
	})
}
