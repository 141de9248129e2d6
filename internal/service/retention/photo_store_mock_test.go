package retention

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

var _ photoStore = &photoStoreMock{}

type photoStoreMock struct {
	ListByInspectionFunc  func(ctx context.Context, inspectionID uuid.UUID) ([]domain.InspectionPhoto, error)
	ListInspectionIDsFunc func(ctx context.Context, ownerID *uuid.UUID) ([]uuid.UUID, error)
	DeleteFunc            func(ctx context.Context, photoID uuid.UUID) error

	calls struct {
		ListByInspection []struct {
			Ctx          context.Context
			InspectionID uuid.UUID
		}
		ListInspectionIDs []struct {
			Ctx     context.Context
			OwnerID *uuid.UUID
		}
		Delete []struct {
			Ctx     context.Context
			PhotoID uuid.UUID
		}
	}
	lockListByInspection  sync.RWMutex
	lockListInspectionIDs sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *photoStoreMock) ListByInspection(ctx context.Context, inspectionID uuid.UUID) ([]domain.InspectionPhoto, error) {
	if mock.ListByInspectionFunc == nil {
		panic("photoStoreMock.ListByInspectionFunc: method is nil but photoStore.ListByInspection was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		InspectionID uuid.UUID
	}{Ctx: ctx, InspectionID: inspectionID}
	mock.lockListByInspection.Lock()
	mock.calls.ListByInspection = append(mock.calls.ListByInspection, callInfo)
	mock.lockListByInspection.Unlock()
	return mock.ListByInspectionFunc(ctx, inspectionID)
}

func (mock *photoStoreMock) ListByInspectionCalls() []struct {
	Ctx          context.Context
	InspectionID uuid.UUID
} {
	mock.lockListByInspection.RLock()
	calls := mock.calls.ListByInspection
	mock.lockListByInspection.RUnlock()
	return calls
}

func (mock *photoStoreMock) ListInspectionIDs(ctx context.Context, ownerID *uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListInspectionIDsFunc == nil {
		panic("photoStoreMock.ListInspectionIDsFunc: method is nil but photoStore.ListInspectionIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListInspectionIDs.Lock()
	mock.calls.ListInspectionIDs = append(mock.calls.ListInspectionIDs, callInfo)
	mock.lockListInspectionIDs.Unlock()
	return mock.ListInspectionIDsFunc(ctx, ownerID)
}

func (mock *photoStoreMock) ListInspectionIDsCalls() []struct {
	Ctx     context.Context
	OwnerID *uuid.UUID
} {
	mock.lockListInspectionIDs.RLock()
	calls := mock.calls.ListInspectionIDs
	mock.lockListInspectionIDs.RUnlock()
	return calls
}

func (mock *photoStoreMock) Delete(ctx context.Context, photoID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("photoStoreMock.DeleteFunc: method is nil but photoStore.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PhotoID uuid.UUID
	}{Ctx: ctx, PhotoID: photoID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, photoID)
}

func (mock *photoStoreMock) DeleteCalls() []struct {
	Ctx     context.Context
	PhotoID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
