package retention

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

// memStore is an in-memory photoStore that keeps photos in insertion order.
type memStore struct {
	mu          sync.Mutex
	order       []uuid.UUID
	photos      map[uuid.UUID][]domain.InspectionPhoto
	owners      map[uuid.UUID]uuid.UUID
	failList    map[uuid.UUID]bool
	failDelete  map[uuid.UUID]bool
	listIDsErr  error
	deleteCalls int
}

func newMemStore(photos ...domain.InspectionPhoto) *memStore {
	s := &memStore{
		photos:     make(map[uuid.UUID][]domain.InspectionPhoto),
		owners:     make(map[uuid.UUID]uuid.UUID),
		failList:   make(map[uuid.UUID]bool),
		failDelete: make(map[uuid.UUID]bool),
	}
	for _, p := range photos {
		s.add(p)
	}
	return s
}

func (s *memStore) add(p domain.InspectionPhoto) {
	if _, ok := s.photos[p.InspectionID]; !ok {
		s.order = append(s.order, p.InspectionID)
		s.owners[p.InspectionID] = p.OwnerID
	}
	s.photos[p.InspectionID] = append(s.photos[p.InspectionID], p)
}

func (s *memStore) ListByInspection(_ context.Context, inspectionID uuid.UUID) ([]domain.InspectionPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList[inspectionID] {
		return nil, fmt.Errorf("inspection %s: connection reset", inspectionID)
	}
	return slices.Clone(s.photos[inspectionID]), nil
}

func (s *memStore) ListInspectionIDs(_ context.Context, ownerID *uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listIDsErr != nil {
		return nil, s.listIDsErr
	}
	ids := []uuid.UUID{}
	for _, id := range s.order {
		if ownerID != nil && s.owners[id] != *ownerID {
			continue
		}
		if len(s.photos[id]) > 0 || s.failList[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *memStore) Delete(_ context.Context, photoID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	if s.failDelete[photoID] {
		return fmt.Errorf("inspection_photo %s: permission denied", photoID)
	}
	for id, photos := range s.photos {
		for i, p := range photos {
			if p.ID == photoID {
				s.photos[id] = slices.Delete(photos, i, i+1)
				return nil
			}
		}
	}
	return fmt.Errorf("inspection_photo %s: %w", photoID, domain.ErrNotFound)
}

func (s *memStore) remaining(inspectionID uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.photos[inspectionID]))
	for _, p := range s.photos[inspectionID] {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s *memStore) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, photos := range s.photos {
		n += len(photos)
	}
	return n
}
