package handler

import (
	"strings"

	"mpinguard/internal/mpin"
	dErrors "mpinguard/pkg/domain-errors"
)

// ValidateRequest is the HTTP request body for POST /mpin/validate.
type ValidateRequest struct {
	PIN          string        `json:"pin"`
	Length       int           `json:"length"`
	Demographics *Demographics `json:"demographics,omitempty"`

	// Parsed domain request (populated by Validate)
	parsed mpin.ValidateRequest
}

// Demographics carries the optional personal dates, each as YYYY-MM-DD.
type Demographics struct {
	BirthDate       string `json:"birth_date,omitempty"`
	SpouseBirthDate string `json:"spouse_birth_date,omitempty"`
	Anniversary     string `json:"anniversary,omitempty"`
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.PIN = strings.TrimSpace(r.PIN)
	if r.PIN == "" {
		return dErrors.New(dErrors.CodeValidation, "pin is required")
	}

	// Length defaults to the submitted PIN's width; the service enforces the
	// supported values and the digits-only rule.
	if r.Length == 0 {
		r.Length = len(r.PIN)
	}

	r.parsed = mpin.ValidateRequest{
		PIN:    r.PIN,
		Length: r.Length,
	}

	if r.Demographics == nil {
		return nil
	}

	var err error
	if r.parsed.Birthdate, err = parseOptionalDate(r.Demographics.BirthDate); err != nil {
		return err
	}
	if r.parsed.SpouseBirthdate, err = parseOptionalDate(r.Demographics.SpouseBirthDate); err != nil {
		return err
	}
	if r.parsed.Anniversary, err = parseOptionalDate(r.Demographics.Anniversary); err != nil {
		return err
	}
	return nil
}

// Parsed returns the validated domain request.
func (r *ValidateRequest) Parsed() mpin.ValidateRequest {
	return r.parsed
}

func parseOptionalDate(s string) (*mpin.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := mpin.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
