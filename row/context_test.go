package row

import (
	"sort"
	"testing"
)

func TestSelection_All(t *testing.T) {
	s := SelectAll()
	if !s.IsAll() {
		t.Error("IsAll() = false")
	}
	for _, id := range []string{"a", "b", "anything"} {
		if !s.Has(id) {
			t.Errorf("select-all should include %q", id)
		}
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d; sentinel cardinality is unknown", s.Count())
	}
	if s.IDs() != nil {
		t.Error("IDs() should be nil for the sentinel")
	}
}

func TestSelection_Finite(t *testing.T) {
	s := SelectIDs("a", "b")
	if s.IsAll() {
		t.Error("finite set reported as all")
	}
	if !s.Has("a") || !s.Has("b") || s.Has("c") {
		t.Error("membership wrong")
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
	ids := s.IDs()
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestSelection_WithWithout(t *testing.T) {
	s := SelectIDs("a")

	s2 := s.With("b")
	if !s2.Has("a") || !s2.Has("b") {
		t.Error("With should add")
	}
	if s.Has("b") {
		t.Error("With must not mutate the receiver")
	}

	s3 := s2.Without("a")
	if s3.Has("a") || !s3.Has("b") {
		t.Error("Without should remove")
	}
	if !s2.Has("a") {
		t.Error("Without must not mutate the receiver")
	}
}

func TestSelection_SentinelEdges(t *testing.T) {
	if s := SelectAll().With("a"); !s.IsAll() {
		t.Error("adding to the sentinel stays all")
	}
	s := SelectAll().Without("a")
	if s.IsAll() || s.Has("b") {
		t.Error("removing from the sentinel demotes to an empty set")
	}
}
