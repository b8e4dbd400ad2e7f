package transcript_test

import (
	"fmt"
	"testing"

	"dermaglow/internal/transcript"
)

func TestExcess(t *testing.T) {
	bound := transcript.DefaultBound()

	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 0},
		{150, 0},
		{199, 0},
		{200, 0},
		{201, 51},
		{202, 52},
		{250, 100},
		{400, 250},
	}
	for _, tc := range cases {
		if got := bound.Excess(tc.count); got != tc.want {
			t.Errorf("Excess(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
}

func TestTrimKeepsMostRecentInOrder(t *testing.T) {
	bound := transcript.DefaultBound()

	entries := make([]string, 201)
	for i := range entries {
		entries[i] = fmt.Sprintf("m-%d", i)
	}

	trimmed := transcript.Trim(bound, entries)
	if len(trimmed) != transcript.DefaultRetain {
		t.Fatalf("expected %d entries after trim, got %d", transcript.DefaultRetain, len(trimmed))
	}
	if trimmed[0] != "m-51" {
		t.Fatalf("expected oldest retained entry m-51, got %s", trimmed[0])
	}
	if trimmed[len(trimmed)-1] != "m-200" {
		t.Fatalf("expected newest entry m-200 last, got %s", trimmed[len(trimmed)-1])
	}
}

func TestTrimNoopUnderCap(t *testing.T) {
	bound := transcript.Bound{Cap: 10, Retain: 5}
	entries := []int{1, 2, 3}
	trimmed := transcript.Trim(bound, entries)
	if len(trimmed) != 3 {
		t.Fatalf("expected untouched slice, got %d entries", len(trimmed))
	}
}
