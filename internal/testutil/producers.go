// Package testutil provides shared test helpers for lazylet tests.
package testutil

import "sync/atomic"

// Counter is a producer that returns 1, 2, 3, ... on successive calls.
type Counter struct {
	n atomic.Int64
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() any {
	return int(c.n.Add(1))
}

// Calls returns how many times Next has been invoked.
func (c *Counter) Calls() int {
	return int(c.n.Load())
}

// Failing returns a producer that always fails with err and counts its calls.
func Failing(err error) (func() (any, error), *atomic.Int64) {
	calls := new(atomic.Int64)
	return func() (any, error) {
		calls.Add(1)
		return nil, err
	}, calls
}
