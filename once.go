// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

import (
	"sync/atomic"
)

// Affine wraps a continuation with one-shot enforcement. A
// continuation handed to the engine is consumed; for call sites that
// pass the same value through several layers, Affine turns accidental
// reuse into a panic (Take) or a detectable failure (TryTake).
type Affine[A any] struct {
	used atomic.Uintptr
	c    Continuation[A]
}

// Once creates an affine wrapper around a continuation.
// The wrapped continuation can be taken at most once.
func Once[A any](c Continuation[A]) *Affine[A] {
	return &Affine[A]{c: c}
}

// Take returns the continuation for execution.
// Panics if the continuation has already been taken.
func (a *Affine[A]) Take() Continuation[A] {
	if a.used.Add(1) != 1 {
		panic("kommit: affine continuation taken twice")
	}
	return a.c
}

// TryTake attempts to take the continuation.
// Returns (continuation, true) on success, or (nil, false) if already
// taken.
func (a *Affine[A]) TryTake() (Continuation[A], bool) {
	if a.used.Add(1) != 1 {
		return nil, false
	}
	return a.c, true
}

// Discard marks the continuation as consumed without executing it.
func (a *Affine[A]) Discard() {
	a.used.Store(1)
}
