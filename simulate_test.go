// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/kommit"
)

func TestSimulateRollbackDiscardsPending(t *testing.T) {
	// A stage contributes an update, then rolls back: net identity.
	c := kommit.Stage[int]{
		Prepare: func(x int) int { return x + 50 },
		Next: func(int) (kommit.Continuation[int], error) {
			return kommit.Rollback[int]{Inner: kommit.Done[int]()}, nil
		},
	}
	got := sim[int](t, c, 3)
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestSimulateRollbackThenNewUpdates(t *testing.T) {
	// Updates after the rollback still apply.
	c := kommit.Stage[int]{
		Prepare: func(x int) int { return x + 50 },
		Next: func(int) (kommit.Continuation[int], error) {
			return kommit.Rollback[int]{Inner: kommit.Pure(dbl)}, nil
		},
	}
	got := sim[int](t, c, 3)
	if got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestSimulateViewAccumulates(t *testing.T) {
	// Each stage's view is the original state with every pending
	// update so far applied, in order.
	var views []int
	stage := func(p func(int) int, next kommit.Step[int]) kommit.Continuation[int] {
		return kommit.Stage[int]{Prepare: p, Next: func(v int) (kommit.Continuation[int], error) {
			views = append(views, v)
			return next(v)
		}}
	}
	c := stage(inc, func(int) (kommit.Continuation[int], error) {
		return stage(dbl, func(int) (kommit.Continuation[int], error) {
			return kommit.Pure(func(x int) int { return x + 100 }), nil
		}), nil
	})
	got := sim[int](t, c, 10)
	if len(views) != 2 || views[0] != 11 || views[1] != 22 {
		t.Fatalf("views %v, want [11 22]", views)
	}
	if got != 122 {
		t.Fatalf("got %d, want 122", got)
	}
}

func TestSimulateDoesNotMutateInput(t *testing.T) {
	// Simulate returns a function; the snapshot itself is untouched
	// and the function is reusable.
	c := kommit.Pure(inc)
	f, err := kommit.Simulate(c, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f(1) != 2 || f(10) != 11 {
		t.Fatal("update function not reusable")
	}
}

func TestSimulateStepError(t *testing.T) {
	boom := errors.New("boom")
	c := kommit.FromStep(func(int) (kommit.Continuation[int], error) {
		return nil, boom
	})
	if _, err := kommit.Simulate(c, 0); !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

func TestSimulateDeepStageChain(t *testing.T) {
	// The replay loop is iterative; a long chain must not overflow
	// the stack.
	const depth = 100000
	var build func(n int) kommit.Continuation[int]
	build = func(n int) kommit.Continuation[int] {
		if n == 0 {
			return kommit.Done[int]()
		}
		return kommit.Stage[int]{
			Prepare: inc,
			Next: func(int) (kommit.Continuation[int], error) {
				return build(n - 1), nil
			},
		}
	}
	got := sim[int](t, build(depth), 0)
	if got != depth {
		t.Fatalf("got %d, want %d", got, depth)
	}
}
