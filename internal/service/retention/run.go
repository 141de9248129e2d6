package retention

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

// errScanInterrupted marks an inspection whose listing was cut short by
// cancellation. It was never read, so it contributes nothing to the report.
var errScanInterrupted = errors.New("scan interrupted")

// run walks the inspections in scope one at a time. Failures are counted in
// the report and never abort the batch; a report is always returned.
func (s *Service) run(
	ctx context.Context,
	scope Scope,
	policy domain.RetentionPolicy,
	mode domain.RunMode,
	maxCount int,
) *domain.Report {
	report := domain.NewReport(policy, mode, maxCount, s.now())
	log := s.log.With(
		slog.String("policy", policy.String()),
		slog.String("mode", mode.String()),
	)

	defer func() {
		report.Finish(s.now())
		s.metrics.RecordRun(report)
		log.Info("retention run finished",
			slog.Bool("success", report.Success),
			slog.Int("containers", report.ContainersScanned),
			slog.Int("scanned", report.TotalRecordsScanned),
			slog.Int("excess_found", report.ExcessFound),
			slog.Int("excess_removed", report.ExcessRemoved),
			slog.Int("errors", report.Errors),
			slog.Float64("duration_seconds", report.DurationSeconds),
		)
	}()

	inspections, err := s.inspections(ctx, scope)
	if err != nil {
		log.Error("list inspections", slog.String("error", err.Error()))
		s.metrics.RecordError(policy, ErrorKindEnumerate)
		report.MarkScanFailed()
		return report
	}

	for _, id := range inspections {
		if err := ctx.Err(); err != nil {
			log.Warn("retention run interrupted", slog.String("error", err.Error()))
			report.MarkInterrupted()
			return report
		}

		result, err := s.processInspection(ctx, log, id, policy, mode, maxCount)
		if !errors.Is(err, errScanInterrupted) {
			report.Add(result)
		}
		if err != nil {
			log.Warn("retention run interrupted",
				slog.String("inspection_id", id.String()),
				slog.String("error", err.Error()),
			)
			report.MarkInterrupted()
			return report
		}
	}

	return report
}

func (s *Service) inspections(ctx context.Context, scope Scope) ([]uuid.UUID, error) {
	if scope.Single() {
		return []uuid.UUID{*scope.InspectionID}, nil
	}
	return s.photos.ListInspectionIDs(ctx, scope.OwnerID)
}

// processInspection evaluates one inspection and, in destructive mode,
// deletes its excess oldest-first. The returned error is only set when the
// context was cancelled during the listing or between deletions.
func (s *Service) processInspection(
	ctx context.Context,
	log *slog.Logger,
	inspectionID uuid.UUID,
	policy domain.RetentionPolicy,
	mode domain.RunMode,
	maxCount int,
) (domain.ContainerResult, error) {
	result := domain.ContainerResult{InspectionID: inspectionID}

	photos, err := s.photos.ListByInspection(ctx, inspectionID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("%w: %w", errScanInterrupted, ctxErr)
		}
		log.Warn("scan inspection",
			slog.String("inspection_id", inspectionID.String()),
			slog.String("error", err.Error()),
		)
		s.metrics.RecordError(policy, ErrorKindScan)
		result.ScanFailed = true
		return result, nil
	}

	result.RecordsScanned = len(photos)
	if len(photos) == 0 {
		return result, nil
	}

	var groups []Group
	if policy == domain.RetentionPolicyCap {
		groups = keepOldest(GroupByAnnotation(photos), maxCount)
	} else {
		groups = EvaluateDedup(GroupByDedupKey(photos))
	}

	var excess []domain.InspectionPhoto
	for _, g := range groups {
		result.RecordsKept += len(g.Survivors)
		if len(g.Excess) > 0 {
			result.GroupsWithExcess++
			excess = append(excess, g.Excess...)
		}
	}
	result.ExcessFound = len(excess)

	if mode == domain.RunModeSimulate || len(excess) == 0 {
		return result, nil
	}

	for _, p := range sortedByCreatedAt(excess) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.photos.Delete(ctx, p.ID); err != nil {
			log.Warn("delete excess photo",
				slog.String("inspection_id", inspectionID.String()),
				slog.String("photo_id", p.ID.String()),
				slog.String("error", err.Error()),
			)
			s.metrics.RecordError(policy, ErrorKindDelete)
			result.DeleteErrors++
			continue
		}
		result.ExcessRemoved++
	}

	log.Debug("inspection processed",
		slog.String("inspection_id", inspectionID.String()),
		slog.Int("excess_found", result.ExcessFound),
		slog.Int("excess_removed", result.ExcessRemoved),
	)

	return result, nil
}
