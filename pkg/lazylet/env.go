// Package lazylet provides a flat environment of named, lazily computed values.
//
// A name is bound either to a constant or to a zero-argument producer.
// Reading a name invokes its producer every time; results are never cached.
package lazylet

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/freshtonic/lazylet/pkg/diagnostics"
)

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidName = &diagnostics.Diagnostic{Code: diagnostics.EInvalidName, Message: "invalid name"}
	ErrUnbound     = &diagnostics.Diagnostic{Code: diagnostics.EUnbound, Message: "unbound name"}
	ErrType        = &diagnostics.Diagnostic{Code: diagnostics.EType, Message: "type mismatch"}
)

// Producer computes the value of a binding. It is invoked on every read.
type Producer func() (any, error)

// Thunk is a producer that cannot fail.
type Thunk func() any

// Env maps names to producers. The zero value is an empty environment.
type Env struct {
	mu        sync.RWMutex
	producers map[string]Producer
	order     []string // first-bind order
}

// New creates an empty environment.
func New() *Env {
	return &Env{producers: make(map[string]Producer)}
}

// Bind binds name to thing and returns e so calls can be chained.
//
// A Producer, Thunk, func() any or func() (any, error) is stored as the
// producer for name. Any other value, nil included, is bound as a constant.
// Rebinding a name replaces its producer. Bind panics if name is empty; use
// Define to get an error instead.
func (e *Env) Bind(name string, thing any) *Env {
	if err := e.Define(name, thing); err != nil {
		panic(err)
	}
	return e
}

// Define is like Bind but returns an error for an invalid name.
func (e *Env) Define(name string, thing any) error {
	if name == "" {
		return diagnostics.MakeDiag(diagnostics.EInvalidName, "cannot bind an empty name", name, "")
	}
	p := toProducer(thing)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.producers == nil {
		e.producers = make(map[string]Producer)
	}
	if _, ok := e.producers[name]; !ok {
		e.order = append(e.order, name)
	}
	e.producers[name] = p
	return nil
}

func toProducer(thing any) Producer {
	switch fn := thing.(type) {
	case Producer:
		if fn != nil {
			return fn
		}
	case func() (any, error):
		if fn != nil {
			return fn
		}
	case Thunk:
		if fn != nil {
			return func() (any, error) { return fn(), nil }
		}
	case func() any:
		if fn != nil {
			return func() (any, error) { return fn(), nil }
		}
	}
	return func() (any, error) { return thing, nil }
}

// Get invokes the current producer for name and returns its result.
// A producer error is returned as is.
func (e *Env) Get(name string) (any, error) {
	e.mu.RLock()
	p, ok := e.producers[name]
	e.mu.RUnlock()
	if !ok {
		return nil, diagnostics.MakeDiag(diagnostics.EUnbound,
			fmt.Sprintf("unbound name '%s'", name), name, "bind it before reading")
	}
	return p()
}

// Lookup is like Get but reports failure as ok == false.
func (e *Env) Lookup(name string) (any, bool) {
	v, err := e.Get(name)
	if err != nil {
		return nil, false
	}
	return v, true
}

// MustGet is like Get but panics on error.
func (e *Env) MustGet(name string) any {
	v, err := e.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether name is bound.
func (e *Env) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.producers[name]
	return ok
}

// Names returns the bound names in the order they were first bound.
func (e *Env) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Len returns the number of bound names.
func (e *Env) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.order)
}

// Values reads every bound name once and returns the results keyed by name.
// It stops at the first producer error.
func (e *Env) Values() (map[string]any, error) {
	names := e.Names()
	out := make(map[string]any, len(names))
	for _, name := range names {
		v, err := e.Get(name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// GetAs reads name from e and asserts the result to T.
func GetAs[T any](e *Env, name string) (T, error) {
	var zero T
	v, err := e.Get(name)
	if err != nil {
		return zero, err
	}
	// nil satisfies interface types only.
	if v == nil && any(zero) == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, diagnostics.MakeDiag(diagnostics.EType,
			fmt.Sprintf("'%s' is %T, want %s", name, v, reflect.TypeOf((*T)(nil)).Elem()), name, "")
	}
	return t, nil
}
