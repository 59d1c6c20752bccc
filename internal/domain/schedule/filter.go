package schedule

// Interval is a reserved [Start, End) range, minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Block is an operator-declared unavailability range. AllDay removes
// every candidate regardless of the time fields.
type Block struct {
	Start  int
	End    int
	AllDay bool
}

// Filter removes candidates that conflict with existing bookings or
// blocks. Order is preserved. An empty result is a normal outcome
// (fully booked or fully blocked day).
func Filter(candidates []Slot, bookings []Interval, blocks []Block) []Slot {
	for _, b := range blocks {
		if b.AllDay {
			return []Slot{}
		}
	}

	out := make([]Slot, 0, len(candidates))

	for _, s := range candidates {
		if conflicts(s, bookings, blocks) {
			continue
		}
		out = append(out, s)
	}

	return out
}

func conflicts(s Slot, bookings []Interval, blocks []Block) bool {
	for _, b := range bookings {
		if Overlaps(s.Start, s.End, b.Start, b.End) {
			return true
		}
	}
	for _, b := range blocks {
		if Overlaps(s.Start, s.End, b.Start, b.End) {
			return true
		}
	}
	return false
}
