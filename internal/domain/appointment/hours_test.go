package appointment

import (
	"testing"
	"time"
)

func TestBusinessHours_Validate(t *testing.T) {
	ok := BusinessHours{
		time.Monday: {Open: "09:00", Close: "17:00"},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid hours rejected: %v", err)
	}

	inverted := BusinessHours{
		time.Monday: {Open: "17:00", Close: "09:00"},
	}
	if err := inverted.Validate(); err == nil {
		t.Fatal("open after close must be rejected")
	}

	malformed := BusinessHours{
		time.Monday: {Open: "9am", Close: "17:00"},
	}
	if err := malformed.Validate(); err == nil {
		t.Fatal("malformed open time must be rejected")
	}
}

func TestBusinessHours_For(t *testing.T) {
	bh := BusinessHours{
		time.Monday: {Open: "09:00", Close: "17:00"},
	}

	open, closeMin, ok := bh.For(time.Monday)
	if !ok || open != 540 || closeMin != 1020 {
		t.Fatalf("unexpected hours: %d %d %v", open, closeMin, ok)
	}

	if _, _, ok := bh.For(time.Sunday); ok {
		t.Fatal("closed day must report not open")
	}
}

func TestStatusTransitions(t *testing.T) {
	if err := CanCancel(StatusPending); err != nil {
		t.Fatalf("pending must be cancellable: %v", err)
	}
	if err := CanCancel(StatusConfirmed); err != nil {
		t.Fatalf("confirmed must be cancellable: %v", err)
	}
	if err := CanCancel(StatusCompleted); err == nil {
		t.Fatal("completed must not be cancellable")
	}
	if err := CanConfirm(StatusCancelled); err == nil {
		t.Fatal("cancelled must not be confirmable")
	}
	if err := CanComplete(StatusConfirmed); err != nil {
		t.Fatalf("confirmed must be completable: %v", err)
	}
}
