package location

import (
	"context"
	"sync"
	"time"
)

var _ memoryRecorder = &memoryRecorderMock{}

type memoryRecorderMock struct {
	RecordLocationFunc func(ctx context.Context, ts time.Time)

	calls struct {
		RecordLocation []struct {
			Ctx context.Context
			Ts  time.Time
		}
	}
	lockRecordLocation sync.RWMutex
}

func (mock *memoryRecorderMock) RecordLocation(ctx context.Context, ts time.Time) {
	if mock.RecordLocationFunc == nil {
		panic("memoryRecorderMock.RecordLocationFunc: method is nil but memoryRecorder.RecordLocation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ts  time.Time
	}{Ctx: ctx, Ts: ts}
	mock.lockRecordLocation.Lock()
	mock.calls.RecordLocation = append(mock.calls.RecordLocation, callInfo)
	mock.lockRecordLocation.Unlock()
	mock.RecordLocationFunc(ctx, ts)
}

func (mock *memoryRecorderMock) RecordLocationCalls() []struct {
	Ctx context.Context
	Ts  time.Time
} {
	mock.lockRecordLocation.RLock()
	calls := mock.calls.RecordLocation
	mock.lockRecordLocation.RUnlock()
	return calls
}
