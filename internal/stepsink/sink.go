package stepsink

import (
	"sync"
	"time"

	"github.com/leo848/pathviz/internal/wire"
)

// Responder is the transport-side seam a Sink publishes encoded frames to.
// A disconnected responder returns Closed() == true; the sink then stops
// attempting further sends for that request without interrupting the
// in-flight algorithm (cancellation is cooperative only).
type Responder interface {
	Send(data []byte) error
	Closed() bool
}

// Step is one emitted intermediate or terminal state. Relevant mirrors the
// source's `relevant_information()` predicate: a step marked not relevant
// (e.g. a `better=false` improvement snapshot) bypasses the pacing delay but
// is still sent.
type Step struct {
	Output   wire.Output
	Relevant bool
}

// pacingClock holds the single process-wide "last relevant emission" instant
// that every Sink shares, so two concurrently streaming algorithms divide
// the same emission bandwidth instead of each pacing independently.
type pacingClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
	wait func(time.Duration)
}

func newPacingClock() *pacingClock {
	return &pacingClock{now: time.Now, wait: time.Sleep}
}

var global = newPacingClock()

// throttle blocks until at least latency has elapsed since the previous
// relevant emission across the whole process, then records the new instant.
func (c *pacingClock) throttle(latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.last.IsZero() {
		needed := latency - now.Sub(c.last)
		if needed > 0 {
			c.wait(needed)
			now = c.now()
		}
	}
	c.last = now
}

// Sink paces and forwards steps for a single request. Latency is the
// per-request budget (minimum milliseconds between successive relevant
// emissions); a zero latency disables pacing entirely.
type Sink struct {
	responder Responder
	latency   time.Duration
	clock     *pacingClock
}

// New builds a Sink writing to responder, pacing relevant emissions to no
// more often than once per latencyMillis.
func New(responder Responder, latencyMillis uint64) *Sink {
	return &Sink{
		responder: responder,
		latency:   time.Duration(latencyMillis) * time.Millisecond,
		clock:     global,
	}
}

// Send paces (if step.Relevant and latency > 0) then encodes and forwards
// step to the responder. It is a no-op once the responder reports Closed.
func (s *Sink) Send(step Step) error {
	if s.responder.Closed() {
		return nil
	}
	if step.Relevant && s.latency > 0 {
		s.clock.throttle(s.latency)
	}
	data, err := wire.Encode(step.Output)
	if err != nil {
		return err
	}
	return s.responder.Send(data)
}
