package arraystack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestZero(t *testing.T) {
	s := new(Stack[int])
	if got := s.Len(); got != 0 {
		t.Errorf("s.Len() = %d; want 0", got)
	}
	if got := s.Cap(); got != 0 {
		t.Errorf("s.Cap() = %d; want 0", got)
	}
	if got, ok := s.Pop(); ok {
		t.Errorf("s.Pop() = %d, true; want _, false", got)
	}
	s.Push(42)
	if got, ok := s.Top(); !ok || got != 42 {
		t.Errorf("s.Top() = %d, %t; want 42, true", got, ok)
	}
	if got := s.Cap(); got != 1 {
		t.Errorf("after Push, s.Cap() = %d; want 1", got)
	}
}

func TestScenario(t *testing.T) {
	s := New[rune](6)
	check(t, "new", s, "", 6)
	for i, c := range "bred" {
		if !s.Add(i, c) {
			t.Fatalf("s.Add(%d, %q) = false", i, c)
		}
	}
	check(t, "after bred", s, "bred", 6)
	s.Add(2, 'e')
	check(t, "after s.Add(2, 'e')", s, "breed", 6)
	s.Add(5, 'r')
	check(t, "after s.Add(5, 'r')", s, "breedr", 6)
	s.Add(5, 'e')
	check(t, "after s.Add(5, 'e')", s, "breeder", 12)

	if got, ok := s.Remove(4); !ok || got != 'd' {
		t.Errorf("s.Remove(4) = %q, %t; want 'd', true", got, ok)
	}
	check(t, "after first remove", s, "breeer", 12)
	s.Remove(4)
	check(t, "after second remove", s, "breer", 12)
	s.Remove(4)
	check(t, "after third remove", s, "bree", 8)

	if prev, ok := s.Set(2, 'i'); !ok || prev != 'e' {
		t.Errorf("s.Set(2, 'i') = %q, %t; want 'e', true", prev, ok)
	}
	check(t, "after set", s, "brie", 8)
}

func TestOutOfRange(t *testing.T) {
	s := New[int](4)
	s.Push(1)
	s.Push(2)

	for _, i := range []int{-1, 2, 3, 4} {
		if got, ok := s.Get(i); ok {
			t.Errorf("s.Get(%d) = %d, true; want _, false", i, got)
		}
		if _, ok := s.Set(i, 99); ok {
			t.Errorf("s.Set(%d, 99) = _, true; want _, false", i)
		}
		if got, ok := s.Remove(i); ok {
			t.Errorf("s.Remove(%d) = %d, true; want _, false", i, got)
		}
	}
	for _, i := range []int{-1, 3} {
		if s.Add(i, 99) {
			t.Errorf("s.Add(%d, 99) = true; want false", i)
		}
	}
	if diff := cmp.Diff([]int{1, 2}, toSlice(s)); diff != "" {
		t.Errorf("contents (-want +got):\n%s", diff)
	}
	if got := s.Cap(); got != 4 {
		t.Errorf("s.Cap() = %d; want 4", got)
	}
}

func TestCapacityBound(t *testing.T) {
	const n = 1000
	s := new(Stack[int])
	for i := 0; i < n; i++ {
		s.Add(0, i)
		if c, size := s.Cap(), s.Len(); c > max(2*size, 1) {
			t.Fatalf("after %d adds, s.Cap() = %d; want <= %d", i+1, c, max(2*size, 1))
		}
	}
	for i := 0; i < n; i++ {
		if got, ok := s.Remove(0); !ok || got != n-1-i {
			t.Fatalf("s.Remove(0) #%d = %d, %t; want %d, true", i, got, ok, n-1-i)
		}
		if c, size := s.Cap(), s.Len(); c >= 3*size && c > 1 {
			t.Fatalf("after %d removes, s.Cap() = %d with Len() = %d", i+1, c, size)
		}
	}
	if diff := cmp.Diff([]int{}, toSlice(s), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("contents (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	s := New[int](0)
	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	for i := 0; i < s.Len(); i++ {
		s.Set(i, i*i)
		if got, ok := s.Get(i); !ok || got != i*i {
			t.Errorf("after s.Set(%d, %d), s.Get(%d) = %d, %t", i, i*i, i, got, ok)
		}
	}
}

func check(tb testing.TB, when string, s *Stack[rune], want string, wantCap int) {
	tb.Helper()
	if diff := cmp.Diff(want, string(toSlice(s))); diff != "" {
		tb.Errorf("%s: contents (-want +got):\n%s", when, diff)
	}
	if got := s.Cap(); got != wantCap {
		tb.Errorf("%s: s.Cap() = %d; want %d", when, got, wantCap)
	}
	if got, want := s.array.Populated(), s.Len(); got != want {
		tb.Errorf("%s: %d populated slots; want %d", when, got, want)
	}
	for i := s.Len(); i < s.Cap(); i++ {
		if x, ok := s.array.Get(i); ok {
			tb.Errorf("%s: slot %d = %q; want empty", when, i, x)
		}
	}
}

func toSlice[T any](s *Stack[T]) []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i], _ = s.Get(i)
	}
	return out
}
