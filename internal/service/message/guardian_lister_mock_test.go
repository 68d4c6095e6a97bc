package message

import (
	"context"
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var _ guardianLister = &guardianListerMock{}

type guardianListerMock struct {
	ListFunc func(ctx context.Context) []domain.Guardian

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *guardianListerMock) List(ctx context.Context) []domain.Guardian {
	if mock.ListFunc == nil {
		panic("guardianListerMock.ListFunc: method is nil but guardianLister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *guardianListerMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
