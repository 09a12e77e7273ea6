package dedup

import "testing"

func TestNewSetSeedsKeys(t *testing.T) {
	s := NewSet([]string{"https://x.com/job/1", "https://x.com/job/2"})

	if !s.Contains("https://x.com/job/1") {
		t.Error("expected seeded key to be present")
	}
	if s.Contains("https://x.com/job/3") {
		t.Error("did not expect unseeded key to be present")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestAddThenContains(t *testing.T) {
	s := NewSet(nil)

	if s.Contains("https://x.com/job/1") {
		t.Error("empty set should contain nothing")
	}
	s.Add("https://x.com/job/1")
	if !s.Contains("https://x.com/job/1") {
		t.Error("expected Contains to return true after Add")
	}
}

func TestAddDuplicateKeepsLen(t *testing.T) {
	s := NewSet([]string{"k"})
	s.Add("k")
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 after duplicate Add", s.Len())
	}
}
