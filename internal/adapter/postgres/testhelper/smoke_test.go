package testhelper

import (
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	inspectionID := uuid.New()
	SeedPhoto(t, pool, inspectionID, PhotoOpts{})
	SeedPhoto(t, pool, inspectionID, PhotoOpts{})

	if got := CountPhotos(t, pool, inspectionID); got != 2 {
		t.Fatalf("expected 2 photos in DB, got %d", got)
	}
}
