package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InspectionPhoto is a single stored photo attached to an inspection (vistoria).
type InspectionPhoto struct {
	ID           uuid.UUID
	InspectionID uuid.UUID
	OwnerID      uuid.UUID
	AnnotationID string
	Phase        InspectionPhase
	// Fingerprint is the content serial computed at upload time; nil for
	// photos uploaded before fingerprinting existed.
	Fingerprint *string
	SourceURL   string
	CreatedAt   time.Time
}

// HasFingerprint reports whether the photo carries a non-empty fingerprint.
func (p InspectionPhoto) HasFingerprint() bool {
	return p.Fingerprint != nil && strings.TrimSpace(*p.Fingerprint) != ""
}

// HasSource reports whether the photo has a non-empty source URL.
func (p InspectionPhoto) HasSource() bool {
	return strings.TrimSpace(p.SourceURL) != ""
}
