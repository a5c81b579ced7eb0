package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/lineedit/internal/dispatcher/handler"
)

// Metrics counts dispatches per action for the session summary.
type Metrics struct {
	mu sync.RWMutex

	actions map[string]*ActionMetrics

	dispatches uint64
	errors     uint64
	panics     uint64
	elapsed    time.Duration
}

// ActionMetrics is the tally for one action name.
type ActionMetrics struct {
	Name       string
	Dispatches uint64
	Errors     uint64
	Elapsed    time.Duration
}

// ErrorRate returns the share of failed dispatches as a percentage.
func (am ActionMetrics) ErrorRate() float64 {
	if am.Dispatches == 0 {
		return 0
	}
	return float64(am.Errors) / float64(am.Dispatches) * 100
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{actions: make(map[string]*ActionMetrics)}
}

// RecordDispatch tallies one finished dispatch.
func (m *Metrics) RecordDispatch(actionName string, elapsed time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am := m.actions[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actions[actionName] = am
	}

	m.dispatches++
	m.elapsed += elapsed
	am.Dispatches++
	am.Elapsed += elapsed

	if status == handler.StatusError {
		m.errors++
		am.Errors++
	}
}

// RecordPanic counts a recovered handler panic. The dispatch itself is
// tallied by RecordDispatch.
func (m *Metrics) RecordPanic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panics++
}

// TopActions returns up to n actions, most dispatched first. Ties are
// ordered by name.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	actions := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		actions = append(actions, *am)
	}

	sort.Slice(actions, func(i, j int) bool {
		if actions[i].Dispatches != actions[j].Dispatches {
			return actions[i].Dispatches > actions[j].Dispatches
		}
		return actions[i].Name < actions[j].Name
	})

	if n < len(actions) {
		actions = actions[:max(n, 0)]
	}
	return actions
}

// MetricsSnapshot holds the session totals at one point in time.
type MetricsSnapshot struct {
	Dispatches uint64
	Errors     uint64
	Panics     uint64
	Actions    int
	Average    time.Duration
}

// Snapshot returns the current totals.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := MetricsSnapshot{
		Dispatches: m.dispatches,
		Errors:     m.errors,
		Panics:     m.panics,
		Actions:    len(m.actions),
	}
	if m.dispatches > 0 {
		snap.Average = m.elapsed / time.Duration(m.dispatches)
	}
	return snap
}
