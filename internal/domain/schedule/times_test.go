package schedule

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ToMinutes(c.in)
		if err != nil {
			t.Errorf("ToMinutes(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestToMinutesInvalid(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:", ":30", "12-30"} {
		if _, err := ToMinutes(in); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("ToMinutes(%q): want ErrInvalidTime, got %v", in, err)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(570); got != "09:30" {
		t.Errorf("FormatMinutes(570) = %q, want 09:30", got)
	}
	if got := FormatMinutes(0); got != "00:00" {
		t.Errorf("FormatMinutes(0) = %q, want 00:00", got)
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	// touching boundaries do not conflict
	if Overlaps(540, 570, 570, 600) {
		t.Error("adjacent intervals must not overlap")
	}
	if Overlaps(570, 600, 540, 570) {
		t.Error("adjacent intervals must not overlap (swapped)")
	}
	if !Overlaps(540, 600, 570, 630) {
		t.Error("partially intersecting intervals must overlap")
	}
	if !Overlaps(540, 600, 550, 560) {
		t.Error("contained interval must overlap")
	}
	if Overlaps(540, 570, 600, 630) {
		t.Error("disjoint intervals must not overlap")
	}
}
