package handler

import (
	"time"

	"mpinguard/internal/mpin"
)

// ValidateResponse is the HTTP response for POST /mpin/validate.
type ValidateResponse struct {
	Strength    string           `json:"strength"`
	Reasons     []ReasonResponse `json:"reasons"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}

// ReasonResponse is one weakness finding with its display text.
type ReasonResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// FromReport converts a domain Report to an HTTP response.
func FromReport(report *mpin.Report) *ValidateResponse {
	reasons := make([]ReasonResponse, 0, len(report.Reasons))
	for _, code := range report.Reasons {
		reasons = append(reasons, ReasonResponse{
			Code:        code.String(),
			Description: code.Describe(),
		})
	}
	return &ValidateResponse{
		Strength:    string(report.Strength),
		Reasons:     reasons,
		EvaluatedAt: report.EvaluatedAt,
	}
}
