// Command photo-cleanup runs one retention pass over inspection photos and
// prints the report as JSON. It is intended to be invoked by an external
// cron job or by an operator; it defaults to a dry run.
//
// Flags:
//
//	--policy      dedup | cap (default: dedup)
//	--inspection  restrict to one inspection ID
//	--owner       restrict to inspections of one owner
//	--max-count   cap per annotation and phase (cap policy; 0 = configured default)
//	--dry-run     report without deleting (default: true)
//	--report      path of a JSON file to write the report to
//
// Exit codes: 0 = success, 1 = error or unsuccessful run.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/adapter/postgres"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/adapter/postgres/photo"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/app"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/config"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/service/retention"
)

type options struct {
	policy     domain.RetentionPolicy
	scope      retention.Scope
	maxCount   int
	dryRun     bool
	reportPath string
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("photo-cleanup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	policy := fs.String("policy", string(domain.RetentionPolicyDedup), "retention policy: dedup or cap")
	inspection := fs.String("inspection", "", "restrict to one inspection ID")
	owner := fs.String("owner", "", "restrict to inspections of one owner")
	maxCount := fs.Int("max-count", 0, "cap per annotation and phase (0 = configured default)")
	dryRun := fs.Bool("dry-run", true, "report without deleting")
	reportPath := fs.String("report", "", "write the JSON report to this file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		policy:     domain.RetentionPolicy(*policy),
		maxCount:   *maxCount,
		dryRun:     *dryRun,
		reportPath: *reportPath,
	}

	if !opts.policy.IsValid() {
		return options{}, fmt.Errorf("--policy must be dedup or cap, got %q", *policy)
	}
	if opts.policy != domain.RetentionPolicyCap && opts.maxCount != 0 {
		return options{}, errors.New("--max-count only applies to --policy cap")
	}

	if *inspection != "" {
		id, err := uuid.Parse(*inspection)
		if err != nil {
			return options{}, fmt.Errorf("--inspection: %w", err)
		}
		opts.scope.InspectionID = &id
	}
	if *owner != "" {
		id, err := uuid.Parse(*owner)
		if err != nil {
			return options{}, fmt.Errorf("--owner: %w", err)
		}
		opts.scope.OwnerID = &id
	}

	return opts, nil
}

// reportFile picks where the report is written: the explicit path, else a
// timestamped file in the configured report directory, else nowhere.
func reportFile(opts options, reportDir string, now time.Time) string {
	if opts.reportPath != "" {
		return opts.reportPath
	}
	if reportDir == "" {
		return ""
	}
	name := fmt.Sprintf("photo-cleanup-%s-%s.json", opts.policy, now.UTC().Format("20060102T150405Z"))
	return filepath.Join(reportDir, name)
}

func writeReport(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func saveReport(path string, report *domain.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := writeReport(f, report); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("photo-cleanup: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Retention.RunTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := retention.NewService(logger, photo.New(pool), nil, cfg.Retention)

	report, err := svc.Run(ctx, opts.policy, opts.scope, opts.dryRun, opts.maxCount)
	if err != nil {
		logger.Error("retention run rejected", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeReport(os.Stdout, report); err != nil {
		logger.Error("print report", slog.String("error", err.Error()))
	}

	if path := reportFile(opts, cfg.Retention.ReportDir, time.Now()); path != "" {
		if err := saveReport(path, report); err != nil {
			logger.Error("save report", slog.String("error", err.Error()), slog.String("path", path))
		} else {
			logger.Info("report saved", slog.String("path", path))
		}
	}

	if !report.Success {
		os.Exit(1)
	}
}
