package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is the outcome of a retention run. Simulated and destructive runs,
// and both policies, share this shape so callers can compare "would remove"
// with "did remove".
type Report struct {
	Success             bool    `json:"success"`
	TotalRecordsScanned int     `json:"totalRecordsScanned"`
	GroupsWithExcess    int     `json:"groupsWithExcess"`
	ExcessFound         int     `json:"excessFound"`
	ExcessRemoved       int     `json:"excessRemoved"`
	RecordsKept         int     `json:"recordsKept"`
	Errors              int     `json:"errors"`
	DurationSeconds     float64 `json:"durationSeconds"`

	Policy            RetentionPolicy `json:"policy"`
	DryRun            bool            `json:"dryRun"`
	MaxCount          int             `json:"maxCount,omitempty"`
	ContainersScanned int             `json:"containersScanned"`
	ContainersFailed  int             `json:"containersFailed"`
	Interrupted       bool            `json:"interrupted,omitempty"`
	StartedAt         time.Time       `json:"startedAt"`
	FinishedAt        time.Time       `json:"finishedAt"`
}

// ContainerResult is the contribution of one inspection to a Report.
type ContainerResult struct {
	InspectionID     uuid.UUID
	ScanFailed       bool
	RecordsScanned   int
	GroupsWithExcess int
	ExcessFound      int
	ExcessRemoved    int
	RecordsKept      int
	DeleteErrors     int
}

// NewReport starts a report for a run beginning at startedAt.
func NewReport(policy RetentionPolicy, mode RunMode, maxCount int, startedAt time.Time) *Report {
	return &Report{
		Success:   true,
		Policy:    policy,
		DryRun:    mode == RunModeSimulate,
		MaxCount:  maxCount,
		StartedAt: startedAt,
	}
}

// Add folds one container's result into the report. Counters are plain sums.
// A failed container counts one error and contributes nothing else; it does
// not clear Success while other containers in the batch could be scanned.
func (r *Report) Add(c ContainerResult) {
	r.ContainersScanned++
	if c.ScanFailed {
		r.ContainersFailed++
		r.Errors++
		return
	}

	r.TotalRecordsScanned += c.RecordsScanned
	r.GroupsWithExcess += c.GroupsWithExcess
	r.ExcessFound += c.ExcessFound
	r.ExcessRemoved += c.ExcessRemoved
	r.RecordsKept += c.RecordsKept
	r.Errors += c.DeleteErrors
}

// MarkScanFailed records a failure that is not tied to a single container,
// such as the container listing itself failing.
func (r *Report) MarkScanFailed() {
	r.Errors++
	r.Success = false
}

// MarkInterrupted records that the run stopped before covering its scope,
// e.g. on cancellation. Counters keep what was processed so far.
func (r *Report) MarkInterrupted() {
	r.Interrupted = true
	r.Success = false
}

// Finish stamps the end time and wall-clock duration. A run where every
// container in scope failed to scan is a failed scan.
func (r *Report) Finish(finishedAt time.Time) {
	if r.ContainersScanned > 0 && r.ContainersFailed == r.ContainersScanned {
		r.Success = false
	}
	r.FinishedAt = finishedAt
	r.DurationSeconds = finishedAt.Sub(r.StartedAt).Seconds()
}

// Partial reports whether the run completed with record-level failures.
func (r *Report) Partial() bool {
	return r.Success && r.Errors > 0
}
