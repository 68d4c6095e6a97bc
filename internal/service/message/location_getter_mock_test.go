package message

import (
	"context"
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var _ locationGetter = &locationGetterMock{}

type locationGetterMock struct {
	GetFunc func(ctx context.Context) domain.Location

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *locationGetterMock) Get(ctx context.Context) domain.Location {
	if mock.GetFunc == nil {
		panic("locationGetterMock.GetFunc: method is nil but locationGetter.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *locationGetterMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
