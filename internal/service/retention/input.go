package retention

import (
	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

// Scope selects the inspections a run covers: a single inspection, or every
// inspection optionally restricted to one owner.
type Scope struct {
	InspectionID *uuid.UUID
	OwnerID      *uuid.UUID
}

// Single reports whether the scope is one inspection.
func (s Scope) Single() bool { return s.InspectionID != nil }

func (s Scope) validate() []domain.FieldError {
	var errs []domain.FieldError

	if s.InspectionID != nil && *s.InspectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "inspection_id", Message: "must not be nil uuid"})
	}
	if s.OwnerID != nil && *s.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "must not be nil uuid"})
	}
	if s.InspectionID != nil && s.OwnerID != nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "cannot be combined with inspection_id"})
	}

	return errs
}

// ScanInput holds the parameters for a duplicate scan. Scans never delete.
type ScanInput struct {
	Scope
}

// Validate checks all fields and collects all errors.
func (i ScanInput) Validate() error {
	if errs := i.Scope.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CleanInput holds the parameters for duplicate removal.
type CleanInput struct {
	Scope
	DryRun bool
}

// Validate checks all fields and collects all errors.
func (i CleanInput) Validate() error {
	if errs := i.Scope.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LimitInput holds the parameters for the cap policy. MaxCount 0 means the
// configured default.
type LimitInput struct {
	Scope
	DryRun   bool
	MaxCount int
}

// Validate checks all fields and collects all errors.
func (i LimitInput) Validate() error {
	errs := i.Scope.validate()
	if i.MaxCount < 0 {
		errs = append(errs, domain.FieldError{Field: "max_count", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
