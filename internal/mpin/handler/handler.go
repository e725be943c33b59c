package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mpinguard/internal/mpin"
	"mpinguard/pkg/platform/httputil"
	"mpinguard/pkg/requestcontext"
)

// Service defines the interface for PIN validation operations.
type Service interface {
	Validate(ctx context.Context, req mpin.ValidateRequest) (*mpin.Report, error)
}

// Handler wires validation endpoints to the validator service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/mpin/validate", h.HandleValidate)
}

// HandleValidate handles POST /mpin/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	report, err := h.service.Validate(ctx, req.Parsed())
	if err != nil {
		h.logger.WarnContext(ctx, "pin validation failed",
			"request_id", requestID,
			"length", req.Length,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	// The PIN itself is never logged.
	h.logger.InfoContext(ctx, "pin validated",
		"request_id", requestID,
		"length", report.Length,
		"strength", report.Strength,
		"reason_count", len(report.Reasons),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromReport(report))
}
