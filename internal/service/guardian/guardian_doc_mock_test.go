package guardian

import (
	"context"
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var _ guardianDoc = &guardianDocMock{}

type guardianDocMock struct {
	GetFunc    func(ctx context.Context) []domain.Guardian
	MutateFunc func(ctx context.Context, fn func([]domain.Guardian) ([]domain.Guardian, error)) ([]domain.Guardian, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Mutate []struct {
			Ctx context.Context
			Fn  func([]domain.Guardian) ([]domain.Guardian, error)
		}
	}
	lockGet    sync.RWMutex
	lockMutate sync.RWMutex
}

func (mock *guardianDocMock) Get(ctx context.Context) []domain.Guardian {
	if mock.GetFunc == nil {
		panic("guardianDocMock.GetFunc: method is nil but guardianDoc.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *guardianDocMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *guardianDocMock) Mutate(ctx context.Context, fn func([]domain.Guardian) ([]domain.Guardian, error)) ([]domain.Guardian, error) {
	if mock.MutateFunc == nil {
		panic("guardianDocMock.MutateFunc: method is nil but guardianDoc.Mutate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func([]domain.Guardian) ([]domain.Guardian, error)
	}{Ctx: ctx, Fn: fn}
	mock.lockMutate.Lock()
	mock.calls.Mutate = append(mock.calls.Mutate, callInfo)
	mock.lockMutate.Unlock()
	return mock.MutateFunc(ctx, fn)
}

func (mock *guardianDocMock) MutateCalls() []struct {
	Ctx context.Context
	Fn  func([]domain.Guardian) ([]domain.Guardian, error)
} {
	mock.lockMutate.RLock()
	calls := mock.calls.Mutate
	mock.lockMutate.RUnlock()
	return calls
}
