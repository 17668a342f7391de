package fallback

import (
	"strings"

	"legalease-backend/models"
)

// Generate produces a complete structured analysis from raw document text
// without any external service. It is the entry point the analysis service
// calls when the Gemini path fails; deterministic for identical input and
// never returns an empty risks, obligations, or clauses list.
func Generate(text, fileName string) *models.StructuredAnalysis {
	sentences := splitSentences(text)
	lower := strings.ToLower(text)

	return &models.StructuredAnalysis{
		Summary:          synthesizeSummary(text, sentences),
		DocumentType:     DetectDocumentType(fileName, text),
		KeyPoints:        synthesizeKeyPoints(text, sentences),
		Risks:            synthesizeRisks(lower),
		Obligations:      synthesizeObligations(sentences),
		ImportantClauses: synthesizeClauses(text, sentences),
		Deadlines:        synthesizeDeadlines(text),
	}
}

// DetectDocumentType classifies the document from its filename and text.
// Rules are checked in fixed priority order; the first match wins.
func DetectDocumentType(fileName, text string) string {
	lowerText := strings.ToLower(text)
	lowerName := strings.ToLower(fileName)

	switch {
	case strings.Contains(lowerText, "contract") || strings.Contains(lowerName, "contract"):
		return models.DocTypeContract
	case strings.Contains(lowerText, "agreement") || strings.Contains(lowerName, "agreement"):
		return models.DocTypeAgreement
	case strings.Contains(lowerText, "policy") || strings.Contains(lowerName, "policy"):
		return models.DocTypePolicy
	case strings.Contains(lowerText, "terms") || strings.Contains(lowerText, "conditions"):
		return models.DocTypeTerms
	case strings.Contains(lowerText, "lease") || strings.Contains(lowerName, "lease"):
		return models.DocTypeLease
	case strings.Contains(lowerText, "employment") || strings.Contains(lowerName, "employment"):
		return models.DocTypeEmployment
	default:
		return models.DocTypeGeneric
	}
}
