// ABOUTME: Activity recorder: counts interactions, per-module usage, and handoffs.
// ABOUTME: Implements the router's notifier contract and republishes events on the bus.

package telemetry

import (
	"fmt"
	"sync"
	"time"

	"github.com/mauromedda/wellness-planner-go/internal/eventbus"
)

// EventType distinguishes routing notifications.
type EventType string

const (
	EventDispatch EventType = "dispatch"
	EventHandoff  EventType = "handoff"
)

// Event is one routing notification.
type Event struct {
	Time   time.Time
	Type   EventType
	Source string
	Target string
}

// Metrics is a point-in-time snapshot of the counters.
type Metrics struct {
	TotalInteractions int
	ModuleUsage       map[string]int
	Handoffs          map[string]int
}

// Recorder accumulates routing activity. It is safe for concurrent use; the
// core is single-threaded but UI goroutines read snapshots.
type Recorder struct {
	mu           sync.Mutex
	bus          *eventbus.Bus[Event]
	activity     []Event
	interactions int
	moduleUsage  map[string]int
	handoffs     map[string]int
	now          func() time.Time
}

// NewRecorder creates a recorder. The bus is optional; when set, every
// recorded event is republished for other subscribers.
func NewRecorder(bus *eventbus.Bus[Event]) *Recorder {
	return &Recorder{
		bus:         bus,
		moduleUsage: make(map[string]int),
		handoffs:    make(map[string]int),
		now:         time.Now,
	}
}

// NotifyDispatch records one capability-module dispatch.
func (r *Recorder) NotifyDispatch(module string) {
	e := Event{Time: r.now(), Type: EventDispatch, Source: "router", Target: module}

	r.mu.Lock()
	r.activity = append(r.activity, e)
	r.interactions++
	r.moduleUsage[module]++
	r.mu.Unlock()

	r.publish(e)
}

// NotifyHandoff records one specialist handoff.
func (r *Recorder) NotifyHandoff(from, to string) {
	e := Event{Time: r.now(), Type: EventHandoff, Source: from, Target: to}

	r.mu.Lock()
	r.activity = append(r.activity, e)
	r.interactions++
	r.handoffs[fmt.Sprintf("%s_to_%s", from, to)]++
	r.mu.Unlock()

	r.publish(e)
}

func (r *Recorder) publish(e Event) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := Metrics{
		TotalInteractions: r.interactions,
		ModuleUsage:       make(map[string]int, len(r.moduleUsage)),
		Handoffs:          make(map[string]int, len(r.handoffs)),
	}
	for k, v := range r.moduleUsage {
		m.ModuleUsage[k] = v
	}
	for k, v := range r.handoffs {
		m.Handoffs[k] = v
	}
	return m
}

// Activity returns a copy of the recorded event log, oldest first.
func (r *Recorder) Activity() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.activity...)
}
