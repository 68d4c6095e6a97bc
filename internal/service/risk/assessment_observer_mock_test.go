package risk

import (
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var _ assessmentObserver = &assessmentObserverMock{}

type assessmentObserverMock struct {
	ObserveAssessmentFunc func(level domain.RiskLevel)

	calls struct {
		ObserveAssessment []struct {
			Level domain.RiskLevel
		}
	}
	lockObserveAssessment sync.RWMutex
}

func (mock *assessmentObserverMock) ObserveAssessment(level domain.RiskLevel) {
	if mock.ObserveAssessmentFunc == nil {
		panic("assessmentObserverMock.ObserveAssessmentFunc: method is nil but assessmentObserver.ObserveAssessment was just called")
	}
	callInfo := struct {
		Level domain.RiskLevel
	}{Level: level}
	mock.lockObserveAssessment.Lock()
	mock.calls.ObserveAssessment = append(mock.calls.ObserveAssessment, callInfo)
	mock.lockObserveAssessment.Unlock()
	mock.ObserveAssessmentFunc(level)
}

func (mock *assessmentObserverMock) ObserveAssessmentCalls() []struct {
	Level domain.RiskLevel
} {
	mock.lockObserveAssessment.RLock()
	calls := mock.calls.ObserveAssessment
	mock.lockObserveAssessment.RUnlock()
	return calls
}
