package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

// PhotoOpts customizes SeedPhoto. Zero values are filled with defaults.
type PhotoOpts struct {
	OwnerID      uuid.UUID
	AnnotationID string
	Phase        domain.InspectionPhase
	Fingerprint  *string
	SourceURL    string
	CreatedAt    time.Time
}

// SeedPhoto inserts an inspection photo directly and returns it.
func SeedPhoto(t *testing.T, pool *pgxpool.Pool, inspectionID uuid.UUID, opts PhotoOpts) domain.InspectionPhoto {
	t.Helper()

	p := domain.InspectionPhoto{
		ID:           uuid.New(),
		InspectionID: inspectionID,
		OwnerID:      opts.OwnerID,
		AnnotationID: opts.AnnotationID,
		Phase:        opts.Phase,
		Fingerprint:  opts.Fingerprint,
		SourceURL:    opts.SourceURL,
		CreatedAt:    opts.CreatedAt,
	}
	if p.OwnerID == uuid.Nil {
		p.OwnerID = uuid.New()
	}
	if p.AnnotationID == "" {
		p.AnnotationID = "item-" + uuid.New().String()[:8]
	}
	if p.Phase == "" {
		p.Phase = domain.InspectionPhaseInitial
	}
	if p.SourceURL == "" {
		p.SourceURL = "https://storage.example.com/vistorias/" + p.ID.String() + ".jpg"
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.CreatedAt = p.CreatedAt.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inspection_photos (id, inspection_id, owner_id, annotation_id, phase, fingerprint, source_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.InspectionID, p.OwnerID, p.AnnotationID, string(p.Phase), p.Fingerprint, p.SourceURL, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPhoto insert: %v", err)
	}

	return p
}

// CountPhotos returns the number of photos stored for an inspection.
func CountPhotos(t *testing.T, pool *pgxpool.Pool, inspectionID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inspection_photos WHERE inspection_id = $1`, inspectionID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountPhotos: %v", err)
	}
	return n
}
