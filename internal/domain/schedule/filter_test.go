package schedule

import "testing"

func window0911(t *testing.T) []Window {
	t.Helper()
	return []Window{{mins(t, "09:00"), mins(t, "11:00")}}
}

func TestFilterNoConstraints(t *testing.T) {
	slots := Filter(Candidates(30, window0911(t)), nil, nil)
	assertStarts(t, slots, "09:00", "09:30", "10:00", "10:30")
}

func TestFilterBookingConflict(t *testing.T) {
	// Booking 09:30-10:00 removes the 09:30 candidate only; 10:00 starts
	// exactly where the booking ends and stays.
	bookings := []Interval{{mins(t, "09:30"), mins(t, "10:00")}}
	slots := Filter(Candidates(30, window0911(t)), bookings, nil)
	assertStarts(t, slots, "09:00", "10:00", "10:30")
}

func TestFilterTimedBlockSpansDay(t *testing.T) {
	blocks := []Block{{Start: mins(t, "09:00"), End: mins(t, "23:59")}}
	slots := Filter(Candidates(30, window0911(t)), nil, blocks)
	if len(slots) != 0 {
		t.Fatalf("whole-window block: want 0 slots, got %v", starts(slots))
	}
}

func TestFilterAllDayBlockIgnoresTimes(t *testing.T) {
	// Time fields of an all-day block are irrelevant.
	blocks := []Block{{Start: mins(t, "13:00"), End: mins(t, "13:30"), AllDay: true}}
	slots := Filter(Candidates(30, window0911(t)), nil, blocks)
	if len(slots) != 0 {
		t.Fatalf("all-day block: want 0 slots, got %v", starts(slots))
	}
}

func TestFilterPartialBlock(t *testing.T) {
	blocks := []Block{{Start: mins(t, "10:00"), End: mins(t, "11:00")}}
	slots := Filter(Candidates(30, window0911(t)), nil, blocks)
	assertStarts(t, slots, "09:00", "09:30")
}

func TestFilterReturnedSlotsNeverOverlapInputs(t *testing.T) {
	bookings := []Interval{
		{mins(t, "09:30"), mins(t, "10:15")},
		{mins(t, "12:00"), mins(t, "13:00")},
	}
	blocks := []Block{{Start: mins(t, "15:00"), End: mins(t, "15:45")}}

	candidates := Candidates(45, []Window{
		{mins(t, "09:00"), mins(t, "13:00")},
		{mins(t, "14:00"), mins(t, "18:00")},
	})

	for _, s := range Filter(candidates, bookings, blocks) {
		for _, b := range bookings {
			if Overlaps(s.Start, s.End, b.Start, b.End) {
				t.Errorf("slot %s overlaps booking %s-%s",
					FormatMinutes(s.Start), FormatMinutes(b.Start), FormatMinutes(b.End))
			}
		}
		for _, b := range blocks {
			if Overlaps(s.Start, s.End, b.Start, b.End) {
				t.Errorf("slot %s overlaps block %s-%s",
					FormatMinutes(s.Start), FormatMinutes(b.Start), FormatMinutes(b.End))
			}
		}
	}
}

func TestFilterOrderingPreserved(t *testing.T) {
	bookings := []Interval{{mins(t, "10:00"), mins(t, "10:30")}}
	slots := Filter(Candidates(30, window0911(t)), bookings, nil)
	for i := 1; i < len(slots); i++ {
		if slots[i].Start <= slots[i-1].Start {
			t.Fatalf("slots not strictly ascending: %v", starts(slots))
		}
	}
}

// Adding a constraint never adds availability.
func TestFilterMonotoneRemoval(t *testing.T) {
	candidates := Candidates(30, window0911(t))

	base := Filter(candidates, nil, nil)
	withBooking := Filter(candidates, []Interval{{mins(t, "09:30"), mins(t, "10:00")}}, nil)
	withBookingAndBlock := Filter(candidates,
		[]Interval{{mins(t, "09:30"), mins(t, "10:00")}},
		[]Block{{Start: mins(t, "10:30"), End: mins(t, "11:00")}},
	)

	if len(withBooking) > len(base) {
		t.Fatalf("adding a booking grew the result: %d > %d", len(withBooking), len(base))
	}
	if len(withBookingAndBlock) > len(withBooking) {
		t.Fatalf("adding a block grew the result: %d > %d", len(withBookingAndBlock), len(withBooking))
	}

	inBase := map[int]bool{}
	for _, s := range base {
		inBase[s.Start] = true
	}
	for _, s := range withBookingAndBlock {
		if !inBase[s.Start] {
			t.Fatalf("filtered result contains slot %s absent from the unfiltered one",
				FormatMinutes(s.Start))
		}
	}
}
