package pos

import "time"

const (
	backoffBase = 500 * time.Millisecond
	backoffMax  = 8 * time.Second
)

// Backoff calcula o atraso exponencial da tentativa (0-based) com jitter.
// jitter ∈ [0,1) vem de fonte injetada, então o tempo de retry é
// determinístico em teste.
func Backoff(attempt int, jitter float64) time.Duration {
	d := backoffBase << uint(attempt)
	if d > backoffMax || d <= 0 {
		d = backoffMax
	}

	// metade fixa + metade sorteada (full jitter deixaria retries colados)
	half := d / 2
	return half + time.Duration(jitter*float64(half))
}
