package speech

import (
	"context"
	"sync"
)

var _ synthesizer = &synthesizerMock{}

type synthesizerMock struct {
	SynthesizeFunc func(ctx context.Context, text string, voice string) ([]byte, error)

	calls struct {
		Synthesize []struct {
			Ctx   context.Context
			Text  string
			Voice string
		}
	}
	lockSynthesize sync.RWMutex
}

func (mock *synthesizerMock) Synthesize(ctx context.Context, text string, voice string) ([]byte, error) {
	if mock.SynthesizeFunc == nil {
		panic("synthesizerMock.SynthesizeFunc: method is nil but synthesizer.Synthesize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Text  string
		Voice string
	}{Ctx: ctx, Text: text, Voice: voice}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, text, voice)
}

func (mock *synthesizerMock) SynthesizeCalls() []struct {
	Ctx   context.Context
	Text  string
	Voice string
} {
	mock.lockSynthesize.RLock()
	calls := mock.calls.Synthesize
	mock.lockSynthesize.RUnlock()
	return calls
}
