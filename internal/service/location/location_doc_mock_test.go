package location

import (
	"context"
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var _ locationDoc = &locationDocMock{}

type locationDocMock struct {
	GetFunc    func(ctx context.Context) domain.Location
	MutateFunc func(ctx context.Context, fn func(domain.Location) (domain.Location, error)) (domain.Location, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Mutate []struct {
			Ctx context.Context
			Fn  func(domain.Location) (domain.Location, error)
		}
	}
	lockGet    sync.RWMutex
	lockMutate sync.RWMutex
}

func (mock *locationDocMock) Get(ctx context.Context) domain.Location {
	if mock.GetFunc == nil {
		panic("locationDocMock.GetFunc: method is nil but locationDoc.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *locationDocMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *locationDocMock) Mutate(ctx context.Context, fn func(domain.Location) (domain.Location, error)) (domain.Location, error) {
	if mock.MutateFunc == nil {
		panic("locationDocMock.MutateFunc: method is nil but locationDoc.Mutate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(domain.Location) (domain.Location, error)
	}{Ctx: ctx, Fn: fn}
	mock.lockMutate.Lock()
	mock.calls.Mutate = append(mock.calls.Mutate, callInfo)
	mock.lockMutate.Unlock()
	return mock.MutateFunc(ctx, fn)
}

func (mock *locationDocMock) MutateCalls() []struct {
	Ctx context.Context
	Fn  func(domain.Location) (domain.Location, error)
} {
	mock.lockMutate.RLock()
	calls := mock.calls.Mutate
	mock.lockMutate.RUnlock()
	return calls
}
