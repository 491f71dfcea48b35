package timeutil

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"12:00", 720, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9h30", 0, false},
		{"", 0, false},
		{"09:60", 0, false},
	}

	for _, c := range cases {
		got, err := ToMinutes(c.in)
		if c.ok {
			if err != nil {
				t.Fatalf("ToMinutes(%q): unexpected error %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("ToMinutes(%q) = %d, want %d", c.in, got, c.want)
			}
			continue
		}
		var fe FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("ToMinutes(%q): expected FormatError, got %v", c.in, err)
		}
	}
}

func TestFromMinutes(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{720, "12:00"},
		{1439, "23:59"},
	}

	for _, c := range cases {
		if got := FromMinutes(c.in); got != c.want {
			t.Fatalf("FromMinutes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:15", "12:15 AM"},
		{"09:30", "9:30 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"16:30", "4:30 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, c := range cases {
		got, err := To12Hour(c.in)
		if err != nil {
			t.Fatalf("To12Hour(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("To12Hour(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := To12Hour("25:00"); err == nil {
		t.Fatal("To12Hour(25:00): expected error")
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint", 540, 570, 600, 630, false},
		{"touching", 540, 570, 570, 600, false},
		{"partial", 555, 585, 570, 600, true},
		{"contained", 570, 580, 540, 600, true},
		{"contains", 540, 600, 570, 580, true},
		{"equal", 540, 600, 540, 600, true},
	}

	for _, c := range cases {
		if got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
			t.Fatalf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
		// simetria
		if got := Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd); got != c.want {
			t.Fatalf("%s (swapped): Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}
