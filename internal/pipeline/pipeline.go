// Package pipeline wires parse, filter and accumulate into one pass.
package pipeline

import (
	"github.com/livp123/evplot/internal/event"
	"github.com/livp123/evplot/internal/filter"
	"github.com/livp123/evplot/internal/series"
)

// Options configure a pipeline run.
type Options struct {
	// Kinds is the tracked allow-list; empty tracks every kind.
	Kinds []string
	// Policy decides what happens to untracked kinds.
	Policy series.Policy
	// Filter optionally drops records before accumulation; nil passes all.
	Filter *filter.Filter
}

// Result is the outcome of a one-shot run.
type Result struct {
	Series   []series.Series
	Parsed   uint64 // records parsed from the input
	Ignored  uint64 // records dropped for an untracked kind
	Filtered uint64 // records dropped by the filter expression
}

// Run executes the one-shot pipeline: read the whole file, parse every
// line, filter, accumulate. Any parse error aborts the run before a chart
// can be produced; under PolicyReject so does the first untracked kind.
func Run(path string, opts Options) (*Result, error) {
	records, err := event.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return process(records, opts)
}

// RunContent is Run for in-memory input.
func RunContent(content string, opts Options) (*Result, error) {
	records, err := event.ParseAll(content)
	if err != nil {
		return nil, err
	}
	return process(records, opts)
}

func process(records []event.Record, opts Options) (*Result, error) {
	acc := series.NewAccumulator(opts.Kinds, opts.Policy)

	var filtered uint64
	for _, rec := range records {
		if !opts.Filter.Match(rec) {
			filtered++
			continue
		}
		if _, err := acc.Add(rec); err != nil {
			return nil, err
		}
	}

	return &Result{
		Series:   acc.Snapshot(),
		Parsed:   uint64(len(records)),
		Ignored:  acc.Ignored(),
		Filtered: filtered,
	}, nil
}
