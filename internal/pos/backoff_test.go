package pos

import (
	"testing"
	"time"
)

func TestBackoff_Deterministic(t *testing.T) {
	cases := []struct {
		attempt int
		jitter  float64
		want    time.Duration
	}{
		{0, 0, 250 * time.Millisecond},
		{0, 0.5, 375 * time.Millisecond},
		{1, 0, 500 * time.Millisecond},
		{2, 0, 1 * time.Second},
		{3, 0.5, 3 * time.Second},
	}

	for _, c := range cases {
		if got := Backoff(c.attempt, c.jitter); got != c.want {
			t.Fatalf("Backoff(%d, %v) = %s, want %s", c.attempt, c.jitter, got, c.want)
		}
	}
}

func TestBackoff_Capped(t *testing.T) {
	// tentativas altas (inclusive com overflow do shift) ficam no teto
	for _, attempt := range []int{10, 20, 40, 63} {
		got := Backoff(attempt, 1)
		if got > backoffMax {
			t.Fatalf("Backoff(%d, 1) = %s exceeds cap %s", attempt, got, backoffMax)
		}
		if got < backoffMax/2 {
			t.Fatalf("Backoff(%d, 1) = %s below half cap", attempt, got)
		}
	}
}
