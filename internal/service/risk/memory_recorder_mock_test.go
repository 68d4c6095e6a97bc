package risk

import (
	"context"
	"sync"
)

var _ memoryRecorder = &memoryRecorderMock{}

type memoryRecorderMock struct {
	RecordLowRiskFunc func(ctx context.Context, scenarioID string, saferAction string)

	calls struct {
		RecordLowRisk []struct {
			Ctx         context.Context
			ScenarioID  string
			SaferAction string
		}
	}
	lockRecordLowRisk sync.RWMutex
}

func (mock *memoryRecorderMock) RecordLowRisk(ctx context.Context, scenarioID string, saferAction string) {
	if mock.RecordLowRiskFunc == nil {
		panic("memoryRecorderMock.RecordLowRiskFunc: method is nil but memoryRecorder.RecordLowRisk was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ScenarioID  string
		SaferAction string
	}{Ctx: ctx, ScenarioID: scenarioID, SaferAction: saferAction}
	mock.lockRecordLowRisk.Lock()
	mock.calls.RecordLowRisk = append(mock.calls.RecordLowRisk, callInfo)
	mock.lockRecordLowRisk.Unlock()
	mock.RecordLowRiskFunc(ctx, scenarioID, saferAction)
}

func (mock *memoryRecorderMock) RecordLowRiskCalls() []struct {
	Ctx         context.Context
	ScenarioID  string
	SaferAction string
} {
	mock.lockRecordLowRisk.RLock()
	calls := mock.calls.RecordLowRisk
	mock.lockRecordLowRisk.RUnlock()
	return calls
}
