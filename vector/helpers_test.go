// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nstd/algo"
	"github.com/katalvlaran/nstd/memory"
	"github.com/katalvlaran/nstd/vector"
)

var errHook = errors.New("hook failed")

// obj is a tracked element; a nil *obj is a moved-from value.
type obj struct {
	val int
}

// ledger records every obj it creates and fails hooks on demand.
// Fail counters follow Tracker.FailAfter: -1 disabled, 0 fails, n > 0 lets
// n more calls succeed.
type ledger struct {
	t            *testing.T
	live         map[*obj]bool
	failNew      int
	failClone    int
	failRelocate int
	relocations  int
}

func newLedger(t *testing.T) *ledger {
	return &ledger{t: t, live: map[*obj]bool{}, failNew: -1, failClone: -1, failRelocate: -1}
}

func (l *ledger) make(val int) *obj {
	o := &obj{val: val}
	l.live[o] = true
	return o
}

func trip(counter *int) bool {
	switch {
	case *counter == 0:
		return true
	case *counter > 0:
		*counter--
	}
	return false
}

// traits returns hooks bound to l. Relocate is installed only when relocate is set.
func (l *ledger) traits(relocate bool) algo.Traits[*obj] {
	tr := algo.Traits[*obj]{
		New: func() (*obj, error) {
			if trip(&l.failNew) {
				return nil, errHook
			}
			return l.make(0), nil
		},
		Clone: func(src *obj) (*obj, error) {
			if trip(&l.failClone) {
				return nil, errHook
			}
			return l.make(src.val), nil
		},
		Drop: func(o *obj) {
			if o == nil {
				return
			}
			if !l.live[o] {
				l.t.Errorf("drop of dead or foreign obj %d", o.val)
			}
			delete(l.live, o)
		},
	}
	if relocate {
		tr.Relocate = func(src *obj) (*obj, error) {
			if trip(&l.failRelocate) {
				return nil, errHook
			}
			l.relocations++
			return l.make(src.val), nil
		}
	}

	return tr
}

// objVector builds a tracked vector holding vals.
func objVector(t *testing.T, tr *memory.Tracker, l *ledger, relocate bool, vals ...int) *vector.Vector[*obj] {
	t.Helper()
	v := vector.New(vector.WithAllocator[*obj](tr), vector.WithTraits(l.traits(relocate)))
	for _, x := range vals {
		_, err := v.PushBack(l.make(x))
		require.NoError(t, err)
	}

	return v
}

// objVals projects a vector of objs to their values.
func objVals(v *vector.Vector[*obj]) []int {
	out := make([]int, 0, v.Len())
	for _, o := range v.All() {
		out = append(out, o.val)
	}

	return out
}

// requireInts fails the test with a diff when got != want.
func requireInts(t *testing.T, want, got []int) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

// intVector builds a tracked vector of ints.
func intVector(t *testing.T, tr *memory.Tracker, vals ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.FromSlice(vals, vector.WithAllocator[int](tr))
	require.NoError(t, err)

	return v
}
