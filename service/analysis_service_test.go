package service

import (
	"context"
	"testing"

	"legalease-backend/models"
	"legalease-backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysisJSON = `{
	"summary": "A short service contract.",
	"documentType": "Contract",
	"keyPoints": ["Payment is monthly"],
	"risks": [{"level": "Medium", "description": "Termination risk", "recommendation": "Read it"}],
	"obligations": [{"party": "Client/Customer", "description": "Pay on time", "deadline": "30 days"}],
	"importantClauses": [{"title": "Payment", "content": "Monthly fee", "importance": "Defines costs"}],
	"deadlines": [{"description": "Payment deadline", "date": "01/15/2024", "consequence": "Late fees"}]
}`

func TestParseAnalysis(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n" + validAnalysisJSON + "\n```\nLet me know."
	analysis, err := parseAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, "A short service contract.", analysis.Summary)
	assert.Equal(t, models.DocTypeContract, analysis.DocumentType)
	require.Len(t, analysis.Risks, 1)
	assert.Equal(t, models.RiskMedium, analysis.Risks[0].Level)
}

func TestParseAnalysisNoJSON(t *testing.T) {
	_, err := parseAnalysis("I could not analyze this document.")
	assert.ErrorIs(t, err, ErrUnparseableAnalysis)
}

func TestParseAnalysisMalformed(t *testing.T) {
	_, err := parseAnalysis(`{"summary": `)
	assert.ErrorIs(t, err, ErrUnparseableAnalysis)
}

func TestParseAnalysisMissingRequiredLists(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing summary", `{"documentType": "Contract", "risks": [{}], "obligations": [{}], "importantClauses": [{}]}`},
		{"missing document type", `{"summary": "s", "risks": [{}], "obligations": [{}], "importantClauses": [{}]}`},
		{"no risks", `{"summary": "s", "documentType": "Contract", "obligations": [{}], "importantClauses": [{}]}`},
		{"no obligations", `{"summary": "s", "documentType": "Contract", "risks": [{}], "importantClauses": [{}]}`},
		{"no clauses", `{"summary": "s", "documentType": "Contract", "risks": [{}], "obligations": [{}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnalysis(tt.raw)
			assert.ErrorIs(t, err, ErrUnparseableAnalysis)
		})
	}
}

func TestAnalyzeFallsBackWithoutClient(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewAnalysisService(WithAnalysisStore(store))

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:     "This agreement requires payment of $5,000 within 30 days.",
		FileName: "deal.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, result.Source)
	assert.NotEqual(t, uuid.Nil, result.Stored.ID)
	assert.Equal(t, "deal.pdf", result.Stored.FileName)
	assert.NotEmpty(t, result.Stored.Analysis.Risks)

	// The result was persisted under its id
	got, err := store.Get(context.Background(), result.Stored.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Stored.ID, got.ID)
}

func TestAnalyzeKeepsProvidedID(t *testing.T) {
	svc := NewAnalysisService(WithAnalysisStore(repository.NewMemoryStore()))
	id := uuid.New()

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		ID:          id,
		Text:        "This agreement covers the delivery of consulting services.",
		FileName:    "deal.pdf",
		StoragePath: "de/deal.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, id, result.Stored.ID)
	assert.Equal(t, "de/deal.pdf", result.Stored.StoragePath)
}

func TestAnalyzeEmptyText(t *testing.T) {
	svc := NewAnalysisService()
	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestGetAnalysisRecovery(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewAnalysisService(WithAnalysisStore(store))

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:     "This agreement covers the delivery of consulting services.",
		FileName: "deal.pdf",
	})
	require.NoError(t, err)

	direct, err := svc.GetAnalysis(context.Background(), result.Stored.ID)
	require.NoError(t, err)
	assert.False(t, direct.Recovered)

	// Unknown id falls back to the most recent analysis
	recovered, err := svc.GetAnalysis(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, recovered.Recovered)
	assert.Equal(t, result.Stored.ID, recovered.Stored.ID)
}

func TestGetAnalysisEmptyStore(t *testing.T) {
	svc := NewAnalysisService(WithAnalysisStore(repository.NewMemoryStore()))
	_, err := svc.GetAnalysis(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}
