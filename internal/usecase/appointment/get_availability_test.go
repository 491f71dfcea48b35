package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/PamperedPaws01/groom-scheduler/internal/domain/appointment"
	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
)

func newAvailabilityUC(repo *fakeRepo) *GetAvailability {
	uc := NewGetAvailability(repo, weekHours(), 15, 30, "UTC")
	uc.now = func() time.Time {
		return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestGetAvailability_FullDay(t *testing.T) {
	uc := newAvailabilityUC(newFakeRepo())

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StaffID:     1,
		Date:        testDate,
		DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 09:00–17:00, passo 15, duração 30 ⇒ 31 slots
	if len(slots) != 31 {
		t.Fatalf("len(slots) = %d, want 31", len(slots))
	}
	if slots[0].Display != "9:00 AM" || slots[len(slots)-1].Display != "4:30 PM" {
		t.Fatalf("range = %s .. %s", slots[0].Display, slots[len(slots)-1].Display)
	}
}

func TestGetAvailability_ExcludesBookedAndCountsCancelled(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "ap-1", "10:00", "") // 10:00–10:45
	cancelled := seedAppointment(repo, "ap-2", "14:00", "")
	cancelled.Status = string(domain.StatusCancelled)
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StaffID:     1,
		Date:        testDate,
		DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	have := map[string]bool{}
	for _, s := range slots {
		have[s.Start] = true
	}

	for _, start := range []string{"09:45", "10:00", "10:15", "10:30"} {
		if have[start] {
			t.Errorf("slot %s should be blocked by the 10:00 booking", start)
		}
	}
	if !have["09:30"] || !have["10:45"] {
		t.Error("slots touching the booking must stay open")
	}
	// cancelado não ocupa horário
	if !have["14:00"] {
		t.Error("cancelled appointment must not block its slot")
	}
}

func TestGetAvailability_SameDayLeadTimeFilter(t *testing.T) {
	uc := newAvailabilityUC(newFakeRepo())
	// agora = 09:45, antecedência mínima de 30 min ⇒ corte em 10:15
	uc.now = func() time.Time {
		return time.Date(2026, 9, 14, 9, 45, 0, 0, time.UTC)
	}

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StaffID:     1,
		Date:        testDate,
		DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected remaining slots")
	}
	if slots[0].Start != "10:15" {
		t.Fatalf("first slot = %s, want 10:15", slots[0].Start)
	}
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := newFakeRepo()
	hours := domain.BusinessHours{
		time.Monday: {Open: "09:00", Close: "17:00"},
	}
	uc := NewGetAvailability(repo, hours, 15, 30, "UTC")
	uc.now = func() time.Time {
		return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	}

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StaffID:     1,
		Date:        "2026-09-13", // domingo
		DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("closed day must yield no slots, got %d", len(slots))
	}
}

func TestGetAvailability_StaffNotFound(t *testing.T) {
	uc := newAvailabilityUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StaffID:     99,
		Date:        testDate,
		DurationMin: 30,
	})
	if !httperr.IsBusiness(err, "staff_not_found") {
		t.Fatalf("expected staff_not_found, got %v", err)
	}
}

func TestGetAvailability_InvalidDuration(t *testing.T) {
	uc := newAvailabilityUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StaffID:     1,
		Date:        testDate,
		DurationMin: 0,
	})

	var ve httperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetAvailability_ListFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("db gone")
	uc := newAvailabilityUC(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StaffID:     1,
		Date:        testDate,
		DurationMin: 30,
	})

	var pe httperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
