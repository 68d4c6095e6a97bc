package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var _ memoryDoc = &memoryDocMock{}

type memoryDocMock struct {
	GetFunc    func(ctx context.Context) domain.Memory
	MutateFunc func(ctx context.Context, fn func(domain.Memory) (domain.Memory, error)) (domain.Memory, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Mutate []struct {
			Ctx context.Context
			Fn  func(domain.Memory) (domain.Memory, error)
		}
	}
	lockGet    sync.RWMutex
	lockMutate sync.RWMutex
}

func (mock *memoryDocMock) Get(ctx context.Context) domain.Memory {
	if mock.GetFunc == nil {
		panic("memoryDocMock.GetFunc: method is nil but memoryDoc.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *memoryDocMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *memoryDocMock) Mutate(ctx context.Context, fn func(domain.Memory) (domain.Memory, error)) (domain.Memory, error) {
	if mock.MutateFunc == nil {
		panic("memoryDocMock.MutateFunc: method is nil but memoryDoc.Mutate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(domain.Memory) (domain.Memory, error)
	}{Ctx: ctx, Fn: fn}
	mock.lockMutate.Lock()
	mock.calls.Mutate = append(mock.calls.Mutate, callInfo)
	mock.lockMutate.Unlock()
	return mock.MutateFunc(ctx, fn)
}

func (mock *memoryDocMock) MutateCalls() []struct {
	Ctx context.Context
	Fn  func(domain.Memory) (domain.Memory, error)
} {
	mock.lockMutate.RLock()
	calls := mock.calls.Mutate
	mock.lockMutate.RUnlock()
	return calls
}
