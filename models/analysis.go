package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RiskLevel represents the severity of an identified risk
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// Document type labels produced by the classifier. Unmatched documents
// fall back to DocTypeGeneric.
const (
	DocTypeContract   = "Contract"
	DocTypeAgreement  = "Agreement"
	DocTypePolicy     = "Policy"
	DocTypeTerms      = "Terms & Conditions"
	DocTypeLease      = "Lease Agreement"
	DocTypeEmployment = "Employment Document"
	DocTypeGeneric    = "Legal Document"
)

// Risk represents a single identified risk with a mitigation recommendation
type Risk struct {
	Level          RiskLevel `json:"level"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
}

// Obligation represents a duty assigned to a party in the document
type Obligation struct {
	Party       string `json:"party"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
}

// Clause represents an important clause with an explanation of why it matters
type Clause struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Importance string `json:"importance"`
}

// Deadline represents a time-sensitive requirement and the consequence of missing it
type Deadline struct {
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Consequence string `json:"consequence"`
}

// StructuredAnalysis is the result of analyzing a legal document, whether
// produced by the Gemini path or the heuristic fallback. It is immutable
// once stored; the chat responder only reads it.
type StructuredAnalysis struct {
	Summary          string       `json:"summary"`
	DocumentType     string       `json:"documentType"`
	KeyPoints        []string     `json:"keyPoints"`
	Risks            []Risk       `json:"risks"`
	Obligations      []Obligation `json:"obligations"`
	ImportantClauses []Clause     `json:"importantClauses"`
	Deadlines        []Deadline   `json:"deadlines"`
}

// Value implements driver.Valuer for JSONB
func (a StructuredAnalysis) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB
func (a *StructuredAnalysis) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// StoredAnalysis is the persistence envelope around a StructuredAnalysis.
// StoragePath is set when the original uploaded document was retained.
type StoredAnalysis struct {
	ID          uuid.UUID          `json:"id"`
	FileName    string             `json:"fileName"`
	StoragePath string             `json:"storagePath,omitempty"`
	Analysis    StructuredAnalysis `json:"analysis"`
	CreatedAt   time.Time          `json:"createdAt"`
}
