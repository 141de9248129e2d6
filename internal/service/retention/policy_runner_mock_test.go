package retention

import (
	"context"
	"sync"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

var _ policyRunner = &policyRunnerMock{}

type policyRunnerMock struct {
	RunFunc func(ctx context.Context, policy domain.RetentionPolicy, scope Scope, dryRun bool, maxCount int) (*domain.Report, error)

	calls struct {
		Run []struct {
			Ctx      context.Context
			Policy   domain.RetentionPolicy
			Scope    Scope
			DryRun   bool
			MaxCount int
		}
	}
	lockRun sync.RWMutex
}

func (mock *policyRunnerMock) Run(ctx context.Context, policy domain.RetentionPolicy, scope Scope, dryRun bool, maxCount int) (*domain.Report, error) {
	if mock.RunFunc == nil {
		panic("policyRunnerMock.RunFunc: method is nil but policyRunner.Run was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Policy   domain.RetentionPolicy
		Scope    Scope
		DryRun   bool
		MaxCount int
	}{Ctx: ctx, Policy: policy, Scope: scope, DryRun: dryRun, MaxCount: maxCount}
	mock.lockRun.Lock()
	mock.calls.Run = append(mock.calls.Run, callInfo)
	mock.lockRun.Unlock()
	return mock.RunFunc(ctx, policy, scope, dryRun, maxCount)
}

func (mock *policyRunnerMock) RunCalls() []struct {
	Ctx      context.Context
	Policy   domain.RetentionPolicy
	Scope    Scope
	DryRun   bool
	MaxCount int
} {
	mock.lockRun.RLock()
	calls := mock.calls.Run
	mock.lockRun.RUnlock()
	return calls
}
