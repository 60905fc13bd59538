package flag

import "testing"

func TestSet_Basic(t *testing.T) {
	var s Set

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(5) {
		t.Error("empty set should not contain 5")
	}

	s.Add(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after add")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Add(5)
	if s.Len() != 1 {
		t.Errorf("duplicate add should be a no-op, got len=%d", s.Len())
	}

	s.Add(10)
	s.Add(3)
	if s.Len() != 3 {
		t.Errorf("len should be 3, got %d", s.Len())
	}
}

func TestSet_Remove(t *testing.T) {
	var s Set
	s.Add(1)
	s.Add(2)
	s.Add(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("set should not contain 2 after remove")
	}
	if s.Len() != 2 {
		t.Errorf("len should be 2, got %d", s.Len())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("set should still contain 1 and 3")
	}

	s.Remove(2) // no-op
	if s.Len() != 2 {
		t.Errorf("removing absent flag should be a no-op, got len=%d", s.Len())
	}
}

func TestSet_Equal_OrderIndependent(t *testing.T) {
	a := New(1, 2, 3)
	b := New(3, 1, 2)
	if !a.Equal(&b) {
		t.Error("sets with the same members in different insertion order should be equal")
	}

	b.Add(4)
	if a.Equal(&b) {
		t.Error("sets with different members should not be equal")
	}
}

func TestSet_Union(t *testing.T) {
	a := New(1, 2)
	b := New(2, 3)
	u := a.Union(&b)
	if u.Len() != 3 {
		t.Errorf("union should have 3 members, got %d", u.Len())
	}
	for _, f := range []Flag{1, 2, 3} {
		if !u.Contains(f) {
			t.Errorf("union missing flag %d", f)
		}
	}
}

func TestSet_Clone(t *testing.T) {
	a := New(1, 2, 3)
	clone := a.Clone()
	clone.Add(99)
	if a.Contains(99) {
		t.Error("modifying clone should not affect original")
	}
	if clone.Len() != 4 {
		t.Errorf("clone should have 4 members, got %d", clone.Len())
	}
}

func TestSet_Slice_InsertionOrder(t *testing.T) {
	var s Set
	s.Add(5)
	s.Add(2)
	s.Add(8)

	got := s.Slice()
	want := []Flag{5, 2, 8}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i, f := range want {
		if got[i] != f {
			t.Errorf("at index %d: expected %d, got %d", i, f, got[i])
		}
	}
}
