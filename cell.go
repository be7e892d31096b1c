// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

import "sync"

// Cell is the shared mutable container the engine commits updates
// into. It is owned by the collaborator and outlives any individual
// continuation; this package never creates or destroys the cells it
// is handed.
//
// Implementations must make Update a single indivisible
// read-modify-write: no concurrent reader may observe a half-applied
// update. Wait blocks until the live value differs from old under the
// cell's equality and returns the live value at wake time.
type Cell[A any] interface {
	// Load returns the current value.
	Load() A

	// Update atomically replaces the value with f(value) and returns
	// the new value.
	Update(f func(A) A) A

	// Wait blocks until the value differs from old, then returns it.
	// Multiple intermediate writes between calls may be skipped; only
	// distinctness from old is guaranteed, not completeness.
	Wait(old A) A
}

// MemCell is an in-process [Cell] backed by a mutex and condition
// variable. The zero value is not usable; construct with [NewMemCell]
// or [NewMemCellFunc].
type MemCell[A any] struct {
	mu   sync.Mutex
	cond sync.Cond
	val  A
	eq   func(A, A) bool
}

// NewMemCell creates a cell holding initial, using == as equality.
func NewMemCell[A comparable](initial A) *MemCell[A] {
	return NewMemCellFunc(initial, func(a, b A) bool { return a == b })
}

// NewMemCellFunc creates a cell with a caller-supplied equality,
// for value types that are not comparable or need semantic equality.
func NewMemCellFunc[A any](initial A, eq func(A, A) bool) *MemCell[A] {
	c := &MemCell[A]{val: initial, eq: eq}
	c.cond.L = &c.mu
	return c
}

// Load returns the current value.
func (c *MemCell[A]) Load() A {
	c.mu.Lock()
	v := c.val
	c.mu.Unlock()
	return v
}

// Update atomically replaces the value with f(value) and returns the
// new value. Waiters are woken regardless of whether f changed the
// value; Wait re-checks equality before returning.
func (c *MemCell[A]) Update(f func(A) A) A {
	c.mu.Lock()
	c.val = f(c.val)
	v := c.val
	c.mu.Unlock()
	c.cond.Broadcast()
	return v
}

// Store atomically replaces the value.
func (c *MemCell[A]) Store(v A) {
	c.Update(func(A) A { return v })
}

// Wait blocks until the value differs from old, then returns it.
func (c *MemCell[A]) Wait(old A) A {
	c.mu.Lock()
	for c.eq(c.val, old) {
		c.cond.Wait()
	}
	v := c.val
	c.mu.Unlock()
	return v
}
