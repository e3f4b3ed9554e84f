package leaderboard

import (
	"fmt"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestSubmitAndTopRoundTrip(t *testing.T) {
	s := openTestStore(t)

	rank, err := s.Submit("ace", 4200)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rank != 1 {
		t.Errorf("first submission rank = %d, want 1", rank)
	}

	top, err := s.Top()
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 || top[0].Name != "ace" || top[0].Score != 4200 {
		t.Errorf("round trip gave %+v", top)
	}
}

func TestTopTenTruncation(t *testing.T) {
	s := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := s.Submit(fmt.Sprintf("p%d", i), i*100); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	top, err := s.Top()
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != Keep {
		t.Fatalf("retained %d records, want %d", len(top), Keep)
	}
	if top[0].Score != 1500 || top[Keep-1].Score != 600 {
		t.Errorf("retention window [%d..%d], want [1500..600]", top[0].Score, top[Keep-1].Score)
	}
}

func TestOrderingBestFirstTiesByAge(t *testing.T) {
	s := openTestStore(t)

	s.Submit("older", 500)
	s.Submit("best", 900)
	s.Submit("newer", 500)

	top, err := s.Top()
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	want := []string{"best", "older", "newer"}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Name, name)
		}
	}
}

func TestLowScoreFallsOffBoard(t *testing.T) {
	s := openTestStore(t)
	for i := 1; i <= Keep; i++ {
		s.Submit(fmt.Sprintf("p%d", i), 1000+i)
	}

	rank, err := s.Submit("late", 1)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rank != 0 {
		t.Errorf("below-cutoff submission ranked %d, want 0", rank)
	}
	top, _ := s.Top()
	for _, r := range top {
		if r.Name == "late" {
			t.Error("below-cutoff record retained on the board")
		}
	}
}
