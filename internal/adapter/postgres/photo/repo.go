// Package photo implements the inspection photo record store using PostgreSQL.
// Fixed reads use raw SQL; the inspection listing uses squirrel because its
// owner filter is optional.
package photo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/VictorCainj/doc-forge-buddy-sub007/internal/adapter/postgres"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

const entity = "inspection_photo"

// Repo provides inspection photo persistence backed by PostgreSQL.
type Repo struct {
	q  postgres.Querier
	sb sq.StatementBuilderType
}

// New creates a new photo repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		q:  q,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const listByInspectionSQL = `
SELECT id, inspection_id, owner_id, annotation_id, phase, fingerprint, source_url, created_at
FROM inspection_photos
WHERE inspection_id = $1
ORDER BY created_at, id`

const deleteSQL = `DELETE FROM inspection_photos WHERE id = $1`

const insertSQL = `
INSERT INTO inspection_photos (id, inspection_id, owner_id, annotation_id, phase, fingerprint, source_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, inspection_id, owner_id, annotation_id, phase, fingerprint, source_url, created_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByInspection returns all photos of an inspection ordered by creation
// time, ties broken by id. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByInspection(ctx context.Context, inspectionID uuid.UUID) ([]domain.InspectionPhoto, error) {
	rows, err := r.q.Query(ctx, listByInspectionSQL, inspectionID)
	if err != nil {
		return nil, postgres.MapError(err, "inspection", inspectionID)
	}
	defer rows.Close()

	result, err := scanPhotos(rows)
	if err != nil {
		return nil, postgres.MapError(err, "inspection", inspectionID)
	}

	return result, nil
}

// ListInspectionIDs returns the distinct inspections that own at least one
// photo, optionally restricted to one owner.
func (r *Repo) ListInspectionIDs(ctx context.Context, ownerID *uuid.UUID) ([]uuid.UUID, error) {
	qb := r.sb.Select("DISTINCT inspection_id").
		From("inspection_photos").
		OrderBy("inspection_id")
	if ownerID != nil {
		qb = qb.Where(sq.Eq{"owner_id": *ownerID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inspections query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list inspections: scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Delete removes a photo by ID. Returns domain.ErrNotFound if the photo does
// not exist.
func (r *Repo) Delete(ctx context.Context, photoID uuid.UUID) error {
	tag, err := r.q.Exec(ctx, deleteSQL, photoID)
	if err != nil {
		return postgres.MapError(err, entity, photoID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, photoID, domain.ErrNotFound)
	}

	return nil
}

// Create inserts a photo. A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, p domain.InspectionPhoto) (*domain.InspectionPhoto, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.CreatedAt = p.CreatedAt.Truncate(time.Microsecond)

	row := r.q.QueryRow(ctx, insertSQL,
		p.ID, p.InspectionID, p.OwnerID, p.AnnotationID, string(p.Phase),
		ptrStringToPgText(p.Fingerprint), p.SourceURL, p.CreatedAt,
	)

	created, err := scanPhoto(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, p.ID)
	}

	return &created, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPhotos(rows pgx.Rows) ([]domain.InspectionPhoto, error) {
	result := []domain.InspectionPhoto{}
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanPhoto resolves the loosely typed columns (nullable fingerprint, free-text
// phase) into a domain.InspectionPhoto.
func scanPhoto(row pgx.Row) (domain.InspectionPhoto, error) {
	var (
		p           domain.InspectionPhoto
		phase       string
		fingerprint pgtype.Text
	)

	if err := row.Scan(&p.ID, &p.InspectionID, &p.OwnerID, &p.AnnotationID, &phase, &fingerprint, &p.SourceURL, &p.CreatedAt); err != nil {
		return domain.InspectionPhoto{}, err
	}

	p.Phase = domain.InspectionPhase(phase)
	if fingerprint.Valid {
		fp := fingerprint.String
		p.Fingerprint = &fp
	}

	return p, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
