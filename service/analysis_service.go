package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"legalease-backend/fallback"
	"legalease-backend/models"
	"legalease-backend/repository"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
)

const (
	defaultModel = "gemini-1.5-flash"

	// The caller treats the remote model as failed after this deadline
	// and switches to the heuristic fallback.
	remoteTimeout = 45 * time.Second
)

// Analysis sources reported to the client
const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

var (
	ErrEmptyDocument       = errors.New("document text is empty")
	ErrAnalysisNotFound    = errors.New("analysis not found")
	ErrUnparseableAnalysis = errors.New("model response is not a structured analysis")
)

// AnalysisService runs document analysis: Gemini first, heuristic fallback
// when the remote call fails or returns unparseable output.
type AnalysisService struct {
	geminiClient *genai.Client
	store        repository.AnalysisStore
	model        string
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// WithGeminiClient sets the Gemini client
func WithGeminiClient(client *genai.Client) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.geminiClient = client
	}
}

// WithAnalysisStore sets the analysis store
func WithAnalysisStore(store repository.AnalysisStore) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.store = store
	}
}

// WithModel overrides the generation model name
func WithModel(model string) AnalysisServiceOption {
	return func(s *AnalysisService) {
		if model != "" {
			s.model = model
		}
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{model: defaultModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeRequest represents a request to analyze document text
type AnalyzeRequest struct {
	ID          uuid.UUID // optional; a fresh id is generated when zero
	Text        string
	FileName    string
	StoragePath string // set when the original document was retained
}

// AnalyzeResult represents a completed analysis and which path produced it
type AnalyzeResult struct {
	Stored *models.StoredAnalysis
	Source string
}

// Analyze produces a structured analysis for the document text and stores
// it. The remote path runs under a 45-second deadline; any failure there,
// including output that cannot be parsed into the analysis shape, silently
// falls back to the heuristic engine with the same text and filename.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyDocument
	}

	source := SourceGemini
	analysis, err := s.remoteAnalyze(ctx, req.Text)
	if err != nil {
		log.Printf("Warning: remote analysis unavailable, using heuristic fallback: %v", err)
		analysis = fallback.Generate(req.Text, req.FileName)
		source = SourceFallback
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	stored := &models.StoredAnalysis{
		ID:          id,
		FileName:    req.FileName,
		StoragePath: req.StoragePath,
		Analysis:    *analysis,
		CreatedAt:   time.Now().UTC(),
	}

	if s.store != nil {
		if err := s.store.Put(ctx, stored); err != nil {
			log.Printf("Warning: failed to store analysis %s: %v", stored.ID, err)
		}
	}

	return &AnalyzeResult{Stored: stored, Source: source}, nil
}

// GetAnalysisResult represents a retrieved analysis. Recovered is true
// when the id lookup missed and the most recent analysis was returned
// instead.
type GetAnalysisResult struct {
	Stored    *models.StoredAnalysis
	Recovered bool
}

// GetAnalysis retrieves a stored analysis by id, falling back to the most
// recent analysis when the direct lookup misses.
func (s *AnalysisService) GetAnalysis(ctx context.Context, id uuid.UUID) (*GetAnalysisResult, error) {
	if s.store == nil {
		return nil, ErrAnalysisNotFound
	}

	stored, err := s.store.Get(ctx, id)
	if err == nil {
		return &GetAnalysisResult{Stored: stored}, nil
	}

	recent, err := s.store.MostRecent(ctx)
	if err != nil {
		return nil, ErrAnalysisNotFound
	}
	return &GetAnalysisResult{Stored: recent, Recovered: true}, nil
}

// RecentAnalyses returns the bounded most-recent list
func (s *AnalysisService) RecentAnalyses(ctx context.Context) ([]*models.StoredAnalysis, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.Recent(ctx)
}

// remoteAnalyze calls Gemini and parses its output into a structured
// analysis. Every failure mode returns an error so the caller can fall
// back; this method never panics on malformed model output.
func (s *AnalysisService) remoteAnalyze(ctx context.Context, text string) (*models.StructuredAnalysis, error) {
	if s.geminiClient == nil {
		return nil, errors.New("gemini client not set")
	}

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	model := s.geminiClient.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(analysisPrompt(text)))
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	raw, err := candidateText(resp)
	if err != nil {
		return nil, err
	}
	return parseAnalysis(raw)
}

// candidateText concatenates the text parts of all candidates
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("model returned no candidates")
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	if b.Len() == 0 {
		return "", errors.New("model returned empty content")
	}
	return b.String(), nil
}

// parseAnalysis extracts the first JSON object from the model text and
// validates it against the analysis invariants.
func parseAnalysis(raw string) (*models.StructuredAnalysis, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, ErrUnparseableAnalysis
	}

	analysis := &models.StructuredAnalysis{}
	if err := json.Unmarshal([]byte(raw[start:end+1]), analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableAnalysis, err)
	}
	if err := validateAnalysis(analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// validateAnalysis enforces the shape guarantees every stored analysis
// carries: non-empty summary and document type, and never-empty risk,
// obligation, and clause lists.
func validateAnalysis(analysis *models.StructuredAnalysis) error {
	switch {
	case strings.TrimSpace(analysis.Summary) == "":
		return fmt.Errorf("%w: missing summary", ErrUnparseableAnalysis)
	case strings.TrimSpace(analysis.DocumentType) == "":
		return fmt.Errorf("%w: missing document type", ErrUnparseableAnalysis)
	case len(analysis.Risks) == 0:
		return fmt.Errorf("%w: no risks", ErrUnparseableAnalysis)
	case len(analysis.Obligations) == 0:
		return fmt.Errorf("%w: no obligations", ErrUnparseableAnalysis)
	case len(analysis.ImportantClauses) == 0:
		return fmt.Errorf("%w: no clauses", ErrUnparseableAnalysis)
	}
	return nil
}
