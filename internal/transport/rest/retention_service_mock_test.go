package rest

import (
	"context"
	"sync"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/service/retention"
)

var _ retentionService = &retentionServiceMock{}

type retentionServiceMock struct {
	ScanDuplicatesFunc  func(ctx context.Context, input retention.ScanInput) (*domain.Report, error)
	CleanDuplicatesFunc func(ctx context.Context, input retention.CleanInput) (*domain.Report, error)
	LimitRecordsFunc    func(ctx context.Context, input retention.LimitInput) (*domain.Report, error)

	calls struct {
		ScanDuplicates []struct {
			Ctx   context.Context
			Input retention.ScanInput
		}
		CleanDuplicates []struct {
			Ctx   context.Context
			Input retention.CleanInput
		}
		LimitRecords []struct {
			Ctx   context.Context
			Input retention.LimitInput
		}
	}
	lockScanDuplicates  sync.RWMutex
	lockCleanDuplicates sync.RWMutex
	lockLimitRecords    sync.RWMutex
}

func (mock *retentionServiceMock) ScanDuplicates(ctx context.Context, input retention.ScanInput) (*domain.Report, error) {
	if mock.ScanDuplicatesFunc == nil {
		panic("retentionServiceMock.ScanDuplicatesFunc: method is nil but retentionService.ScanDuplicates was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input retention.ScanInput
	}{Ctx: ctx, Input: input}
	mock.lockScanDuplicates.Lock()
	mock.calls.ScanDuplicates = append(mock.calls.ScanDuplicates, callInfo)
	mock.lockScanDuplicates.Unlock()
	return mock.ScanDuplicatesFunc(ctx, input)
}

func (mock *retentionServiceMock) ScanDuplicatesCalls() []struct {
	Ctx   context.Context
	Input retention.ScanInput
} {
	mock.lockScanDuplicates.RLock()
	calls := mock.calls.ScanDuplicates
	mock.lockScanDuplicates.RUnlock()
	return calls
}

func (mock *retentionServiceMock) CleanDuplicates(ctx context.Context, input retention.CleanInput) (*domain.Report, error) {
	if mock.CleanDuplicatesFunc == nil {
		panic("retentionServiceMock.CleanDuplicatesFunc: method is nil but retentionService.CleanDuplicates was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input retention.CleanInput
	}{Ctx: ctx, Input: input}
	mock.lockCleanDuplicates.Lock()
	mock.calls.CleanDuplicates = append(mock.calls.CleanDuplicates, callInfo)
	mock.lockCleanDuplicates.Unlock()
	return mock.CleanDuplicatesFunc(ctx, input)
}

func (mock *retentionServiceMock) CleanDuplicatesCalls() []struct {
	Ctx   context.Context
	Input retention.CleanInput
} {
	mock.lockCleanDuplicates.RLock()
	calls := mock.calls.CleanDuplicates
	mock.lockCleanDuplicates.RUnlock()
	return calls
}

func (mock *retentionServiceMock) LimitRecords(ctx context.Context, input retention.LimitInput) (*domain.Report, error) {
	if mock.LimitRecordsFunc == nil {
		panic("retentionServiceMock.LimitRecordsFunc: method is nil but retentionService.LimitRecords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input retention.LimitInput
	}{Ctx: ctx, Input: input}
	mock.lockLimitRecords.Lock()
	mock.calls.LimitRecords = append(mock.calls.LimitRecords, callInfo)
	mock.lockLimitRecords.Unlock()
	return mock.LimitRecordsFunc(ctx, input)
}

func (mock *retentionServiceMock) LimitRecordsCalls() []struct {
	Ctx   context.Context
	Input retention.LimitInput
} {
	mock.lockLimitRecords.RLock()
	calls := mock.calls.LimitRecords
	mock.lockLimitRecords.RUnlock()
	return calls
}
