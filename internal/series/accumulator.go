package series

import (
	"sync"

	"github.com/livp123/evplot/internal/event"
	"github.com/livp123/evplot/pkg/errors"
)

// Policy decides what happens to a record whose kind is not tracked.
type Policy string

const (
	// PolicyIgnore drops untracked records silently. This matches the
	// historical behaviour of treating anything but the known labels as noise.
	PolicyIgnore Policy = "ignore"
	// PolicyReject aborts accumulation on the first untracked record.
	PolicyReject Policy = "reject"
)

// ParsePolicy validates and normalizes a policy string. Empty means ignore.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyIgnore:
		return PolicyIgnore, nil
	case PolicyReject:
		return PolicyReject, nil
	default:
		return "", errors.NewPolicyError(s)
	}
}

// Accumulator maintains one cumulative series per tracked kind.
//
// The counter for a kind increases by exactly 1 per matching record,
// starting at 1, and every increment appends a point in input order.
// With an empty tracked set every kind is tracked, in first-seen order.
// Safe for concurrent use; follow mode feeds Add while renders Snapshot.
type Accumulator struct {
	mu      sync.RWMutex
	policy  Policy
	tracked map[string]bool // nil means track everything
	order   []string
	series  map[string]*Series
	ignored uint64
}

// NewAccumulator creates an accumulator for the given kinds.
// An empty kinds list tracks all kinds dynamically.
func NewAccumulator(kinds []string, policy Policy) *Accumulator {
	a := &Accumulator{
		policy: policy,
		series: make(map[string]*Series),
	}
	if len(kinds) > 0 {
		a.tracked = make(map[string]bool, len(kinds))
		for _, k := range kinds {
			if a.tracked[k] {
				continue
			}
			a.tracked[k] = true
			// A configured kind gets a stable legend slot even before
			// its first record arrives.
			a.order = append(a.order, k)
			a.series[k] = &Series{Kind: k}
		}
	}
	return a
}

// Add feeds one record into the accumulator and reports whether a point
// was appended. Untracked kinds are counted and dropped under PolicyIgnore,
// and are an error under PolicyReject.
func (a *Accumulator) Add(rec event.Record) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.tracked != nil && !a.tracked[rec.Kind] {
		if a.policy == PolicyReject {
			return false, errors.NewKindError(rec.Kind)
		}
		a.ignored++
		return false, nil
	}

	s, ok := a.series[rec.Kind]
	if !ok {
		s = &Series{Kind: rec.Kind}
		a.series[rec.Kind] = s
		a.order = append(a.order, rec.Kind)
	}
	s.Points = append(s.Points, Point{
		Timestamp: rec.Timestamp,
		Count:     uint64(len(s.Points)) + 1,
	})
	return true, nil
}

// AddAll feeds a batch of records, stopping at the first error.
func (a *Accumulator) AddAll(records []event.Record) error {
	for _, rec := range records {
		if _, err := a.Add(rec); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns a deep copy of all series in kind order: configured
// kinds first in configured order, then dynamic kinds in first-seen order.
func (a *Accumulator) Snapshot() []Series {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Series, 0, len(a.order))
	for _, kind := range a.order {
		src := a.series[kind]
		cp := Series{Kind: kind, Points: make([]Point, len(src.Points))}
		copy(cp.Points, src.Points)
		out = append(out, cp)
	}
	return out
}

// Kinds returns the tracked kind names in snapshot order.
func (a *Accumulator) Kinds() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Ignored returns how many records were dropped for having an untracked kind.
func (a *Accumulator) Ignored() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ignored
}

// Total returns the number of accumulated points across all series.
func (a *Accumulator) Total() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var n uint64
	for _, s := range a.series {
		n += uint64(len(s.Points))
	}
	return n
}
