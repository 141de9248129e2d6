package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/config"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

type photoStore interface {
	ListByInspection(ctx context.Context, inspectionID uuid.UUID) ([]domain.InspectionPhoto, error)
	ListInspectionIDs(ctx context.Context, ownerID *uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, photoID uuid.UUID) error
}

type runRecorder interface {
	RecordRun(report *domain.Report)
	RecordError(policy domain.RetentionPolicy, kind string)
}

// Error kinds passed to the run recorder.
const (
	ErrorKindEnumerate = "enumerate"
	ErrorKindScan      = "scan"
	ErrorKindDelete    = "delete"
)

// Service finds duplicate and surplus inspection photos and removes them.
type Service struct {
	photos  photoStore
	metrics runRecorder
	cfg     config.RetentionConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new retention service. metrics may be nil.
func NewService(
	log *slog.Logger,
	photos photoStore,
	metrics runRecorder,
	cfg config.RetentionConfig,
) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		photos:  photos,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With("service", "retention"),
		now:     time.Now,
	}
}

// ScanDuplicates reports duplicate photos without deleting anything.
func (s *Service) ScanDuplicates(ctx context.Context, input ScanInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.run(ctx, input.Scope, domain.RetentionPolicyDedup, domain.RunModeSimulate, 0), nil
}

// CleanDuplicates removes every duplicate except the oldest copy. With
// DryRun it produces the same report without deleting.
func (s *Service) CleanDuplicates(ctx context.Context, input CleanInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.run(ctx, input.Scope, domain.RetentionPolicyDedup, domain.RunModeFromDryRun(input.DryRun), 0), nil
}

// LimitRecords keeps at most MaxCount photos per annotation and phase,
// removing the newest surplus.
func (s *Service) LimitRecords(ctx context.Context, input LimitInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	maxCount := input.MaxCount
	if maxCount == 0 {
		maxCount = s.cfg.DefaultMaxCount
	}
	if err := validateMaxCount(maxCount); err != nil {
		return nil, err
	}

	return s.run(ctx, input.Scope, domain.RetentionPolicyCap, domain.RunModeFromDryRun(input.DryRun), maxCount), nil
}

// Run executes a policy over a scope. It is the entry point for the
// scheduler and the photo-cleanup command.
func (s *Service) Run(ctx context.Context, policy domain.RetentionPolicy, scope Scope, dryRun bool, maxCount int) (*domain.Report, error) {
	switch policy {
	case domain.RetentionPolicyDedup:
		return s.CleanDuplicates(ctx, CleanInput{Scope: scope, DryRun: dryRun})
	case domain.RetentionPolicyCap:
		return s.LimitRecords(ctx, LimitInput{Scope: scope, DryRun: dryRun, MaxCount: maxCount})
	default:
		return nil, domain.NewValidationError("policy", "must be dedup or cap")
	}
}

type nopRecorder struct{}

func (nopRecorder) RecordRun(*domain.Report)                    {}
func (nopRecorder) RecordError(domain.RetentionPolicy, string) {}
