package chat

import (
	"context"
	"sync"
)

var _ assistant = &assistantMock{}

type assistantMock struct {
	ReplyFunc func(ctx context.Context, message string, riskLevel string) (string, error)

	calls struct {
		Reply []struct {
			Ctx       context.Context
			Message   string
			RiskLevel string
		}
	}
	lockReply sync.RWMutex
}

func (mock *assistantMock) Reply(ctx context.Context, message string, riskLevel string) (string, error) {
	if mock.ReplyFunc == nil {
		panic("assistantMock.ReplyFunc: method is nil but assistant.Reply was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Message   string
		RiskLevel string
	}{Ctx: ctx, Message: message, RiskLevel: riskLevel}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, message, riskLevel)
}

func (mock *assistantMock) ReplyCalls() []struct {
	Ctx       context.Context
	Message   string
	RiskLevel string
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}
