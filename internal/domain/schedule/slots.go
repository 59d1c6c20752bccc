package schedule

import "sort"

// Granularity is the fixed step between candidate start times, in
// minutes. It is independent of the service duration: a 60-minute
// service still only starts on half-hour boundaries.
const Granularity = 30

// Window is one open-hours interval, minutes since midnight.
type Window struct {
	Start int
	End   int
}

// Slot is a candidate or offerable [Start, End) interval on one date.
type Slot struct {
	Start int
	End   int
}

// Candidates produces every start time the windows allow for a service
// of durationMin minutes: per window, successive starts advancing by
// Granularity while the slot still ends within the window. The result
// is ascending by start and deduplicated (overlapping windows are a
// configuration error, not a reason to emit the same start twice).
// No windows means no slots, not an error.
func Candidates(durationMin int, windows []Window) []Slot {
	if durationMin <= 0 {
		return nil
	}

	seen := make(map[int]bool)
	var slots []Slot

	for _, w := range windows {
		for start := w.Start; start+durationMin <= w.End; start += Granularity {
			if seen[start] {
				continue
			}
			seen[start] = true
			slots = append(slots, Slot{Start: start, End: start + durationMin})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})

	return slots
}
