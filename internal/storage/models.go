package storage

import "time"

// Conversion statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Conversion is one audit record of a CV conversion request.
type Conversion struct {
	ID               string    `json:"id"`
	FileName         string    `json:"fileName"`
	CandidateName    string    `json:"candidateName"`
	PositionTitle    string    `json:"positionTitle,omitempty"`
	AccountManagerID string    `json:"accountManagerId,omitempty"`
	SkillCategories  []string  `json:"skillCategories,omitempty"`
	PageCount        int       `json:"pageCount"`
	DocxBlob         string    `json:"docxBlob,omitempty"`
	PDFBlob          string    `json:"pdfBlob,omitempty"`
	Status           string    `json:"status"`
	ErrorMessage     string    `json:"error,omitempty"`
	DurationMS       int64     `json:"durationMs"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ConversionFilter narrows ListConversions. Zero values match everything.
type ConversionFilter struct {
	CandidateName string `json:"candidateName"`
	Status        string `json:"status"`
	Limit         int    `json:"limit"`
}
