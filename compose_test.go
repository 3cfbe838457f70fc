package generator

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func count(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestYieldFromGenerator(t *testing.T) {
	g := New(func(y *Yielder[int]) {
		y.YieldFrom(New(func(inner *Yielder[int]) {
			for i := 0; i < 100; i++ {
				inner.Yield(i)
			}
		}))
		y.YieldSeq(count(100))
	})

	want := make([]int, 0, 200)
	for i := 0; i < 100; i++ {
		want = append(want, i)
	}
	for i := 0; i < 100; i++ {
		want = append(want, i)
	}
	if diff := cmp.Diff(want, Collect(g)); diff != "" {
		t.Errorf("wrong sequence (-want +got):\n%s", diff)
	}
}

func TestYieldFromSlice(t *testing.T) {
	g := New(func(y *Yielder[string]) {
		y.Yield("start")
		y.YieldFrom(FromSlice([]string{"a", "b", "c"}))
	})

	want := []string{"start", "a", "b", "c"}
	if diff := cmp.Diff(want, Collect(g)); diff != "" {
		t.Errorf("wrong sequence (-want +got):\n%s", diff)
	}
}
