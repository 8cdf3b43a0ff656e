// Package filter evaluates an optional expr predicate against event records.
package filter

import (
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/livp123/evplot/internal/event"
	"github.com/livp123/evplot/pkg/errors"
)

// Env is the environment a filter expression runs against.
type Env struct {
	Kind      string
	Timestamp int64
}

// Is reports whether the record's kind equals the given name.
func (e *Env) Is(kind string) bool {
	return e.Kind == kind
}

// Has reports whether the record's kind contains the given substring.
func (e *Env) Has(needle string) bool {
	return strings.Contains(e.Kind, needle)
}

// Before reports whether the record's timestamp is strictly below ts.
func (e *Env) Before(ts int64) bool {
	return e.Timestamp < ts
}

// After reports whether the record's timestamp is strictly above ts.
func (e *Env) After(ts int64) bool {
	return e.Timestamp > ts
}

// Between reports whether lo <= timestamp <= hi.
func (e *Env) Between(lo, hi int64) bool {
	return e.Timestamp >= lo && e.Timestamp <= hi
}

var envPool = sync.Pool{
	New: func() interface{} {
		return &Env{}
	},
}

// Filter is a compiled predicate. A nil *Filter matches everything.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile compiles an expression into a Filter. An empty expression yields
// a nil filter (pass-through). Non-boolean expressions fail to compile.
func Compile(expression string) (*Filter, error) {
	src := strings.TrimSpace(expression)
	if src == "" {
		return nil, nil
	}

	program, err := expr.Compile(src, expr.Env(&Env{}), expr.AsBool())
	if err != nil {
		return nil, errors.NewFilterError(src, err)
	}
	return &Filter{source: src, program: program}, nil
}

// Source returns the original expression text.
func (f *Filter) Source() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match reports whether the record passes the filter.
// Runtime evaluation errors count as no match.
func (f *Filter) Match(rec event.Record) bool {
	if f == nil {
		return true
	}

	env := envPool.Get().(*Env)
	defer envPool.Put(env)

	env.Kind = rec.Kind
	env.Timestamp = rec.Timestamp

	output, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}
	matched, ok := output.(bool)
	return ok && matched
}
