package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/service/retention"
	"github.com/VictorCainj/doc-forge-buddy-sub007/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type retentionService interface {
	ScanDuplicates(ctx context.Context, input retention.ScanInput) (*domain.Report, error)
	CleanDuplicates(ctx context.Context, input retention.CleanInput) (*domain.Report, error)
	LimitRecords(ctx context.Context, input retention.LimitInput) (*domain.Report, error)
}

// AdminHandler serves the photo retention admin endpoints.
type AdminHandler struct {
	retention retentionService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc retentionService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		retention: svc,
		log:       logger.With("handler", "admin"),
	}
}

type scopeRequest struct {
	InspectionID *uuid.UUID `json:"inspectionId,omitempty"`
	OwnerID      *uuid.UUID `json:"ownerId,omitempty"`
}

func (s scopeRequest) scope() retention.Scope {
	return retention.Scope{InspectionID: s.InspectionID, OwnerID: s.OwnerID}
}

type cleanRequest struct {
	scopeRequest
	DryRun *bool `json:"dryRun,omitempty"`
}

type limitRequest struct {
	scopeRequest
	DryRun   *bool `json:"dryRun,omitempty"`
	MaxCount int   `json:"maxCount,omitempty"`
}

// ScanDuplicates reports duplicate photos without deleting.
// POST /admin/photos/duplicates/scan
func (h *AdminHandler) ScanDuplicates(w http.ResponseWriter, r *http.Request) {
	var req scopeRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.retention.ScanDuplicates(r.Context(), retention.ScanInput{Scope: req.scope()})
	h.respond(w, r, "scan duplicates", report, err)
}

// CleanDuplicates removes duplicate photos. dryRun defaults to true.
// POST /admin/photos/duplicates/clean
func (h *AdminHandler) CleanDuplicates(w http.ResponseWriter, r *http.Request) {
	var req cleanRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.retention.CleanDuplicates(r.Context(), retention.CleanInput{
		Scope:  req.scope(),
		DryRun: boolOr(req.DryRun, true),
	})
	h.respond(w, r, "clean duplicates", report, err)
}

// LimitRecords caps photos per annotation and phase. dryRun defaults to
// true; maxCount defaults to the configured value.
// POST /admin/photos/limit
func (h *AdminHandler) LimitRecords(w http.ResponseWriter, r *http.Request) {
	var req limitRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.retention.LimitRecords(r.Context(), retention.LimitInput{
		Scope:    req.scope(),
		DryRun:   boolOr(req.DryRun, true),
		MaxCount: req.MaxCount,
	})
	h.respond(w, r, "limit records", report, err)
}

// decode reads an optional JSON body into dst. An empty body leaves dst at
// its zero value.
func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *AdminHandler) respond(w http.ResponseWriter, r *http.Request, op string, report *domain.Report, err error) {
	if err != nil {
		h.handleError(w, r, op, err)
		return
	}

	actor, _ := ctxutil.UserIDFromCtx(r.Context())
	h.log.InfoContext(r.Context(), op,
		slog.String("actor", actor.String()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		slog.Bool("success", report.Success),
		slog.Bool("dry_run", report.DryRun),
		slog.Int("excess_found", report.ExcessFound),
		slog.Int("excess_removed", report.ExcessRemoved),
	)

	writeJSON(w, http.StatusOK, report)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
