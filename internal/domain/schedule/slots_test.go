package schedule

import "testing"

// mins is a fixture shorthand for "HH:MM" parsed in tests.
func mins(t *testing.T, s string) int {
	t.Helper()
	m, err := ToMinutes(s)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", s, err)
	}
	return m
}

func starts(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = FormatMinutes(s.Start)
	}
	return out
}

func assertStarts(t *testing.T, slots []Slot, want ...string) {
	t.Helper()
	got := starts(slots)
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d = %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestCandidatesSingleWindow(t *testing.T) {
	// 09:00-11:00, 30 min service: last slot is 10:30-11:00, an 11:00
	// start would end past the window.
	slots := Candidates(30, []Window{{mins(t, "09:00"), mins(t, "11:00")}})
	assertStarts(t, slots, "09:00", "09:30", "10:00", "10:30")
}

func TestCandidatesLongDuration(t *testing.T) {
	// 90 min inside 09:00-11:00: 09:30 ends at 11:00 exactly and fits,
	// 10:00 would end at 11:30.
	slots := Candidates(90, []Window{{mins(t, "09:00"), mins(t, "11:00")}})
	assertStarts(t, slots, "09:00", "09:30")
}

func TestCandidatesGranularityIndependentOfDuration(t *testing.T) {
	slots := Candidates(60, []Window{{mins(t, "09:00"), mins(t, "12:00")}})
	for _, s := range slots {
		if s.Start%Granularity != 0 {
			t.Errorf("start %s not on a %d-minute boundary", FormatMinutes(s.Start), Granularity)
		}
		if s.End-s.Start != 60 {
			t.Errorf("slot %s length %d, want 60", FormatMinutes(s.Start), s.End-s.Start)
		}
	}
	assertStarts(t, slots, "09:00", "09:30", "10:00", "10:30", "11:00")
}

func TestCandidatesNoWindows(t *testing.T) {
	if got := Candidates(30, nil); len(got) != 0 {
		t.Fatalf("no windows: want 0 slots, got %v", starts(got))
	}
}

func TestCandidatesMultipleWindowsOrdered(t *testing.T) {
	slots := Candidates(30, []Window{
		{mins(t, "16:00"), mins(t, "17:00")},
		{mins(t, "09:00"), mins(t, "10:00")},
	})
	assertStarts(t, slots, "09:00", "09:30", "16:00", "16:30")
}

func TestCandidatesOverlappingWindowsDeduplicated(t *testing.T) {
	slots := Candidates(30, []Window{
		{mins(t, "09:00"), mins(t, "11:00")},
		{mins(t, "10:00"), mins(t, "12:00")},
	})
	assertStarts(t, slots, "09:00", "09:30", "10:00", "10:30", "11:00", "11:30")

	seen := map[int]bool{}
	for _, s := range slots {
		if seen[s.Start] {
			t.Fatalf("duplicate start %s", FormatMinutes(s.Start))
		}
		seen[s.Start] = true
	}
}

func TestCandidatesWindowShorterThanDuration(t *testing.T) {
	if got := Candidates(120, []Window{{mins(t, "09:00"), mins(t, "10:00")}}); len(got) != 0 {
		t.Fatalf("window shorter than duration: want 0 slots, got %v", starts(got))
	}
}

func TestCandidatesZeroDuration(t *testing.T) {
	if got := Candidates(0, []Window{{mins(t, "09:00"), mins(t, "10:00")}}); got != nil {
		t.Fatalf("zero duration: want nil, got %v", starts(got))
	}
}
