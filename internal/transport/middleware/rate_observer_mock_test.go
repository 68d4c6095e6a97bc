package middleware

import "sync"

var _ rateObserver = &rateObserverMock{}

type rateObserverMock struct {
	ObserveRateLimitedFunc func(route string)

	calls struct {
		ObserveRateLimited []struct {
			Route string
		}
	}
	lockObserveRateLimited sync.RWMutex
}

func (mock *rateObserverMock) ObserveRateLimited(route string) {
	if mock.ObserveRateLimitedFunc == nil {
		panic("rateObserverMock.ObserveRateLimitedFunc: method is nil but rateObserver.ObserveRateLimited was just called")
	}
	callInfo := struct {
		Route string
	}{Route: route}
	mock.lockObserveRateLimited.Lock()
	mock.calls.ObserveRateLimited = append(mock.calls.ObserveRateLimited, callInfo)
	mock.lockObserveRateLimited.Unlock()
	mock.ObserveRateLimitedFunc(route)
}

func (mock *rateObserverMock) ObserveRateLimitedCalls() []struct {
	Route string
} {
	mock.lockObserveRateLimited.RLock()
	calls := mock.calls.ObserveRateLimited
	mock.lockObserveRateLimited.RUnlock()
	return calls
}
