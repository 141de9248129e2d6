package retention

import (
	"sync"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

var _ runRecorder = &runRecorderMock{}

type runRecorderMock struct {
	RecordRunFunc   func(report *domain.Report)
	RecordErrorFunc func(policy domain.RetentionPolicy, kind string)

	calls struct {
		RecordRun []struct {
			Report *domain.Report
		}
		RecordError []struct {
			Policy domain.RetentionPolicy
			Kind   string
		}
	}
	lockRecordRun   sync.RWMutex
	lockRecordError sync.RWMutex
}

func (mock *runRecorderMock) RecordRun(report *domain.Report) {
	callInfo := struct {
		Report *domain.Report
	}{Report: report}
	mock.lockRecordRun.Lock()
	mock.calls.RecordRun = append(mock.calls.RecordRun, callInfo)
	mock.lockRecordRun.Unlock()
	if mock.RecordRunFunc != nil {
		mock.RecordRunFunc(report)
	}
}

func (mock *runRecorderMock) RecordRunCalls() []struct {
	Report *domain.Report
} {
	mock.lockRecordRun.RLock()
	calls := mock.calls.RecordRun
	mock.lockRecordRun.RUnlock()
	return calls
}

func (mock *runRecorderMock) RecordError(policy domain.RetentionPolicy, kind string) {
	callInfo := struct {
		Policy domain.RetentionPolicy
		Kind   string
	}{Policy: policy, Kind: kind}
	mock.lockRecordError.Lock()
	mock.calls.RecordError = append(mock.calls.RecordError, callInfo)
	mock.lockRecordError.Unlock()
	if mock.RecordErrorFunc != nil {
		mock.RecordErrorFunc(policy, kind)
	}
}

func (mock *runRecorderMock) RecordErrorCalls() []struct {
	Policy domain.RetentionPolicy
	Kind   string
} {
	mock.lockRecordError.RLock()
	calls := mock.calls.RecordError
	mock.lockRecordError.RUnlock()
	return calls
}
