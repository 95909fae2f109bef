package stepsink

import (
	"sync"
	"testing"
	"time"

	"github.com/leo848/pathviz/internal/wire"
	"github.com/stretchr/testify/require"
)

type fakeResponder struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func (f *fakeResponder) Send(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, data)
	return nil
}

func (f *fakeResponder) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func newFakeClock(start time.Time) (*pacingClock, *time.Duration) {
	var slept time.Duration
	t := start
	c := &pacingClock{
		now: func() time.Time { return t },
		wait: func(d time.Duration) {
			slept += d
			t = t.Add(d)
		},
	}
	return c, &slept
}

func TestSink_ThrottlesRelevantSteps(t *testing.T) {
	clock, slept := newFakeClock(time.Unix(0, 0))
	resp := &fakeResponder{}
	sink := &Sink{responder: resp, latency: 100 * time.Millisecond, clock: clock}

	for i := 0; i < 3; i++ {
		require.NoError(t, sink.Send(Step{
			Output:   wire.SortedNumbersOutput(wire.SortedNumbers{Numbers: []int64{1}}),
			Relevant: true,
		}))
	}

	require.Equal(t, 200*time.Millisecond, *slept)
	require.Len(t, resp.frames, 3)
}

func TestSink_NonRelevantStepsSkipWait(t *testing.T) {
	clock, slept := newFakeClock(time.Unix(0, 0))
	resp := &fakeResponder{}
	sink := &Sink{responder: resp, latency: 100 * time.Millisecond, clock: clock}

	for i := 0; i < 5; i++ {
		require.NoError(t, sink.Send(Step{
			Output:   wire.PathImprovementOutput(wire.PathImprovement{Better: false, CurrentPath: []int{0, 1}}),
			Relevant: false,
		}))
	}

	require.Zero(t, *slept)
	require.Len(t, resp.frames, 5)
}

func TestSink_ClosedResponderStopsSends(t *testing.T) {
	clock, _ := newFakeClock(time.Unix(0, 0))
	resp := &fakeResponder{closed: true}
	sink := &Sink{responder: resp, latency: 0, clock: clock}

	require.NoError(t, sink.Send(Step{Output: wire.SortedNumbersOutput(wire.SortedNumbers{Done: true})}))
	require.Empty(t, resp.frames)
}

func TestSink_ZeroLatencyNeverThrottles(t *testing.T) {
	clock, slept := newFakeClock(time.Unix(0, 0))
	resp := &fakeResponder{}
	sink := &Sink{responder: resp, latency: 0, clock: clock}

	for i := 0; i < 4; i++ {
		require.NoError(t, sink.Send(Step{Output: wire.SortedNumbersOutput(wire.SortedNumbers{}), Relevant: true}))
	}
	require.Zero(t, *slept)
}
