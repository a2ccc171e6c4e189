package game

import (
	"fmt"
	"strings"
	"testing"
)

func TestEventLogQueries(t *testing.T) {
	el := NewEventLog(false)
	el.Add(1, "input", "select", "(0,0,0)", 0)
	el.Add(2, "score", "add", "3 tiles", 30)
	el.AddVerbose(3, "input", "hover", "(1,-1,0)", 0)
	el.Add(5, "score", "add", "4 tiles", 80)

	if el.Len() != 3 {
		t.Fatalf("verbose entry should be dropped, len=%d", el.Len())
	}
	if el.Count("score", "add") != 2 || el.Sum("score", "add") != 110 {
		t.Fatalf("count=%d sum=%g", el.Count("score", "add"), el.Sum("score", "add"))
	}
	first, _ := el.FirstOf("score", "add")
	last, _ := el.LastOf("score", "add")
	if first.NumVal != 30 || last.NumVal != 80 {
		t.Fatalf("first=%g last=%g", first.NumVal, last.NumVal)
	}
	if _, ok := el.FirstOf("bomb", "created"); ok {
		t.Fatal("unexpected bomb entry")
	}
	if !el.HasEntry("score", "", "4 tiles") || el.HasEntry("input", "select", "(9") {
		t.Fatal("HasEntry substring match wrong")
	}
	if got := el.FilterTickRange(2, 5); len(got) != 2 {
		t.Fatalf("expected 2 entries in range, got %d", len(got))
	}
	if tail := el.Tail(1); strings.Count(tail, "\n") != 1 || !strings.Contains(tail, "4 tiles") {
		t.Fatalf("unexpected tail %q", tail)
	}

	verbose := NewEventLog(true)
	verbose.AddVerbose(1, "input", "hover", "x", 0)
	if verbose.Len() != 1 {
		t.Fatal("verbose log should keep verbose entries")
	}
}

func TestFeedWraps(t *testing.T) {
	f := NewFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(i, ToneInfo, fmt.Sprintf("m%d", i))
	}
	if f.Len() != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, f.Len())
	}
	recent := f.Recent()
	if recent[0].Message != "m5" || recent[len(recent)-1].Message != fmt.Sprintf("m%d", feedMaxEntries+4) {
		t.Fatalf("unexpected order %q .. %q", recent[0].Message, recent[len(recent)-1].Message)
	}
	last := f.Last(3)
	if len(last) != 3 || last[2].Tick != feedMaxEntries+4 {
		t.Fatalf("unexpected last %v", last)
	}
	if got := NewFeed().Last(3); len(got) != 0 {
		t.Fatal("empty feed should return nothing")
	}
}

func TestDetermineResultRatings(t *testing.T) {
	cases := []struct {
		score, moves int
		want         Rating
	}{
		{0, 0, RatingNone},
		{100, 5, RatingNone},
		{200, 5, RatingBronze},
		{400, 5, RatingSilver},
		{800, 5, RatingGold},
	}
	for _, tc := range cases {
		res := DetermineResult(1, tc.score, tc.moves, 1, 0, 0, 0)
		if res.Rating != tc.want {
			t.Fatalf("score %d in %d moves: got %s, want %s", tc.score, tc.moves, res.Rating, tc.want)
		}
	}
	if s := DetermineResult(2, 400, 5, 3, 20, 1, 1).String(); !strings.Contains(s, "silver") || !strings.Contains(s, "level 2") {
		t.Fatalf("unexpected summary %q", s)
	}
}

func TestStateBusy(t *testing.T) {
	for _, st := range []State{StateIdle, StateHexSelected, StateGameOver} {
		if st.Busy() {
			t.Fatalf("%s should not be busy", st)
		}
	}
	for _, st := range []State{StateHexSwap, StateHexUnswap, StateRemovingMatches, StateCloseGaps, StateRotating} {
		if !st.Busy() {
			t.Fatalf("%s should be busy", st)
		}
	}
}
