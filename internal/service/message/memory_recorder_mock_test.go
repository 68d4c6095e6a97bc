package message

import (
	"context"
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var _ memoryRecorder = &memoryRecorderMock{}

type memoryRecorderMock struct {
	RecordMessageFunc func(ctx context.Context, preview domain.MessagePreview)

	calls struct {
		RecordMessage []struct {
			Ctx     context.Context
			Preview domain.MessagePreview
		}
	}
	lockRecordMessage sync.RWMutex
}

func (mock *memoryRecorderMock) RecordMessage(ctx context.Context, preview domain.MessagePreview) {
	if mock.RecordMessageFunc == nil {
		panic("memoryRecorderMock.RecordMessageFunc: method is nil but memoryRecorder.RecordMessage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Preview domain.MessagePreview
	}{Ctx: ctx, Preview: preview}
	mock.lockRecordMessage.Lock()
	mock.calls.RecordMessage = append(mock.calls.RecordMessage, callInfo)
	mock.lockRecordMessage.Unlock()
	mock.RecordMessageFunc(ctx, preview)
}

func (mock *memoryRecorderMock) RecordMessageCalls() []struct {
	Ctx     context.Context
	Preview domain.MessagePreview
} {
	mock.lockRecordMessage.RLock()
	calls := mock.calls.RecordMessage
	mock.lockRecordMessage.RUnlock()
	return calls
}
