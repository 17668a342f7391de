package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"legalease-backend/fallback"
	"legalease-backend/models"
	"legalease-backend/repository"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
)

var ErrEmptyConversation = errors.New("conversation has no messages")

// ChatService answers follow-up questions about a stored analysis. The
// remote path mirrors the analysis service; the fallback responder makes
// this total over every input, including an absent analysis.
type ChatService struct {
	geminiClient *genai.Client
	store        repository.AnalysisStore
	model        string
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithGeminiClient sets the Gemini client
func ChatWithGeminiClient(client *genai.Client) ChatServiceOption {
	return func(s *ChatService) {
		s.geminiClient = client
	}
}

// ChatWithAnalysisStore sets the analysis store
func ChatWithAnalysisStore(store repository.AnalysisStore) ChatServiceOption {
	return func(s *ChatService) {
		s.store = store
	}
}

// ChatWithModel overrides the generation model name
func ChatWithModel(model string) ChatServiceOption {
	return func(s *ChatService) {
		if model != "" {
			s.model = model
		}
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{model: defaultModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatRequest represents one chat turn. Analysis takes precedence over
// AnalysisID; with neither, the responder runs without document context.
type ChatRequest struct {
	Messages   []models.ChatMessage
	AnalysisID *uuid.UUID
	Analysis   *models.StructuredAnalysis
}

// Respond answers the latest question in the conversation. A missing or
// unknown analysis id degrades to generic guidance rather than failing,
// and any remote failure falls back to the heuristic responder.
func (s *ChatService) Respond(ctx context.Context, req ChatRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", ErrEmptyConversation
	}
	lastMessage := req.Messages[len(req.Messages)-1].Content

	analysis := req.Analysis
	if analysis == nil && req.AnalysisID != nil && s.store != nil {
		if stored, err := s.store.Get(ctx, *req.AnalysisID); err == nil {
			analysis = &stored.Analysis
		} else if recent, err := s.store.MostRecent(ctx); err == nil {
			analysis = &recent.Analysis
		}
	}

	reply, err := s.remoteRespond(ctx, req.Messages, analysis)
	if err != nil {
		log.Printf("Warning: remote chat unavailable, using heuristic fallback: %v", err)
		return fallback.Respond(lastMessage, analysis), nil
	}
	return reply, nil
}

func (s *ChatService) remoteRespond(ctx context.Context, messages []models.ChatMessage, analysis *models.StructuredAnalysis) (string, error) {
	if s.geminiClient == nil {
		return "", errors.New("gemini client not set")
	}

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	model := s.geminiClient.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(chatPrompt(messages, analysis)))
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	return candidateText(resp)
}
