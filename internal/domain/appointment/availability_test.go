package appointment

import (
	"testing"

	"github.com/PamperedPaws01/groom-scheduler/internal/models"
	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
)

func TestGenerateSlots_NoBookings(t *testing.T) {
	// 09:00–17:00, passo 15, duração 30
	slots := GenerateSlots(540, 1020, nil, 30, 15)

	if len(slots) != 31 {
		t.Fatalf("expected 31 slots, got %d", len(slots))
	}
	if slots[0].Start != "09:00" || slots[0].Display != "9:00 AM" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	last := slots[len(slots)-1]
	if last.Start != "16:30" || last.Display != "4:30 PM" || last.End != "17:00" {
		t.Fatalf("unexpected last slot: %+v", last)
	}
}

func TestGenerateSlots_ExcludesOverlapping(t *testing.T) {
	// reserva 10:00–10:30
	booked := []BookedInterval{{StartMin: 600, EndMin: 630}}

	slots := GenerateSlots(540, 1020, booked, 30, 15)

	have := make(map[string]bool, len(slots))
	for _, s := range slots {
		have[s.Start] = true
	}

	// 09:45 terminaria 10:15 → conflita
	for _, excluded := range []string{"09:45", "10:00", "10:15"} {
		if have[excluded] {
			t.Fatalf("slot %s should be excluded", excluded)
		}
	}
	// 09:30 termina exatamente às 10:00 → livre
	if !have["09:30"] {
		t.Fatal("slot 09:30 should be available")
	}
	// 10:30 começa exatamente no fim da reserva → livre
	if !have["10:30"] {
		t.Fatal("slot 10:30 should be available")
	}

	if len(slots) != 28 {
		t.Fatalf("expected 28 slots, got %d", len(slots))
	}
}

func TestGenerateSlots_NoneOverlapBooked(t *testing.T) {
	booked := []BookedInterval{
		{StartMin: 570, EndMin: 615},
		{StartMin: 720, EndMin: 780},
		{StartMin: 900, EndMin: 990},
	}

	slots := GenerateSlots(540, 1020, booked, 45, 15)

	for _, s := range slots {
		start, err := timeutil.ToMinutes(s.Start)
		if err != nil {
			t.Fatalf("bad slot start %q: %v", s.Start, err)
		}
		for _, b := range booked {
			if timeutil.Overlaps(start, start+45, b.StartMin, b.EndMin) {
				t.Fatalf("slot %s overlaps booked [%d,%d)", s.Start, b.StartMin, b.EndMin)
			}
		}
	}
}

func TestGenerateSlots_DurationExceedsDay(t *testing.T) {
	slots := GenerateSlots(540, 1020, nil, 600, 15)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	if got := GenerateSlots(540, 1020, nil, 0, 15); len(got) != 0 {
		t.Fatalf("zero duration: expected no slots, got %d", len(got))
	}
	if got := GenerateSlots(540, 1020, nil, 30, 0); len(got) != 0 {
		t.Fatalf("zero step: expected no slots, got %d", len(got))
	}
}

func TestBookedIntervals_SkipsCancelled(t *testing.T) {
	apps := []models.Appointment{
		{StartTime: "09:00", DurationMin: 30, Status: string(StatusConfirmed)},
		{StartTime: "10:00", DurationMin: 30, Status: string(StatusCancelled)},
		{StartTime: "not-a-time", DurationMin: 30, Status: string(StatusPending)},
		{StartTime: "11:00", DurationMin: 45, Status: string(StatusPending)},
	}

	intervals := BookedIntervals(apps)
	if len(intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(intervals))
	}
	if intervals[0].StartMin != 540 || intervals[0].EndMin != 570 {
		t.Fatalf("unexpected first interval: %+v", intervals[0])
	}
	if intervals[1].StartMin != 660 || intervals[1].EndMin != 705 {
		t.Fatalf("unexpected second interval: %+v", intervals[1])
	}
}
