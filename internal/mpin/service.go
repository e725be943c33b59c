package mpin

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mpinguard/internal/mpin/metrics"
	dErrors "mpinguard/pkg/domain-errors"
	pslices "mpinguard/pkg/platform/slices"
	"mpinguard/pkg/requestcontext"
)

// Service orchestrates the validation pipeline: fragment extraction,
// candidate generation, direct lookup, and special-pattern detection. All
// per-call state is local, so a single Service is safe for concurrent use.
type Service struct {
	static  map[int]CandidateSet
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

// WithMetrics attaches Prometheus metrics to the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the validator. The static candidate sets for both PIN
// lengths are built once here and shared, immutable, across all calls.
func New(opts ...Option) *Service {
	s := &Service{
		static: map[int]CandidateSet{
			PINLength4: staticCandidates(PINLength4),
			PINLength6: staticCandidates(PINLength6),
		},
		tracer: otel.Tracer("mpinguard/internal/mpin"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate evaluates the submitted PIN against the static and demographic
// weak-candidate universe and returns the full report.
//
// Errors: ErrInvalidPINFormat when the PIN is not exactly Length digits or
// Length is unsupported; ErrInvalidDate when a supplied date is not a real
// calendar date. Both carry a validation code for transport mapping. There
// are no retries and no partial results.
func (s *Service) Validate(ctx context.Context, req ValidateRequest) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "mpin.validate",
		trace.WithAttributes(attribute.Int("pin.length", req.Length)))
	defer span.End()

	start := time.Now()

	if err := validatePINFormat(req.PIN, req.Length); err != nil {
		return nil, err
	}

	mappings, err := req.fragmentMappings()
	if err != nil {
		return nil, err
	}

	candidates := s.static[req.Length].clone()
	addDemographicCandidates(candidates, req.Length, mappings)

	reasons := append([]ReasonCode(nil), candidates[req.PIN]...)
	reasons = append(reasons, DetectSpecialPatterns(req.PIN, mappings...)...)
	reasons = pslices.Dedupe(reasons)
	sortReasons(reasons)

	strength := StrengthStrong
	if len(reasons) > 0 {
		strength = StrengthWeak
	}

	report := &Report{
		PIN:         req.PIN,
		Length:      req.Length,
		Strength:    strength,
		Reasons:     reasons,
		EvaluatedAt: requestcontext.Now(ctx),
	}

	span.SetAttributes(attribute.String("pin.strength", string(strength)))
	s.metrics.ObserveValidateLatency(time.Since(start))
	s.metrics.IncrementOutcome(string(strength))
	for _, reason := range reasons {
		s.metrics.IncrementReason(string(reason))
	}

	return report, nil
}

// validatePINFormat enforces the format gate: supported length, exact length
// match, digits only.
func validatePINFormat(pin string, length int) error {
	if length != PINLength4 && length != PINLength6 {
		return dErrors.Wrap(ErrInvalidPINFormat, dErrors.CodeValidation,
			fmt.Sprintf("pin length must be 4 or 6, got %d", length))
	}
	if len(pin) != length {
		return dErrors.Wrap(ErrInvalidPINFormat, dErrors.CodeValidation,
			fmt.Sprintf("pin must be exactly %d digits", length))
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return dErrors.Wrap(ErrInvalidPINFormat, dErrors.CodeValidation,
				"pin must contain only digits")
		}
	}
	return nil
}

// fragmentMappings extracts fragments for each supplied date in a fixed
// source order so reports are reproducible.
func (r ValidateRequest) fragmentMappings() ([]Fragments, error) {
	sources := []struct {
		date   *Date
		origin Origin
	}{
		{r.Birthdate, OriginBirthdate},
		{r.SpouseBirthdate, OriginSpouseBirthdate},
		{r.Anniversary, OriginAnniversary},
	}

	var mappings []Fragments
	for _, src := range sources {
		if src.date == nil {
			continue
		}
		frags, err := ExtractDateFragments(*src.date, r.Length)
		if err != nil {
			return nil, err
		}
		frags.Origin = src.origin
		mappings = append(mappings, frags)
	}
	return mappings, nil
}
