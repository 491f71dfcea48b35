package timeutil

import (
	"fmt"
	"time"
)

// --------------------------------------------------
// Conversões "HH:MM" <-> minutos desde a meia-noite
// --------------------------------------------------

type FormatError struct {
	Value string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid time %q, expected HH:MM", e.Value)
}

func ToMinutes(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, FormatError{Value: hhmm}
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// To12Hour converte "HH:MM" para exibição "h:mm AM/PM".
// Horas 0 e 12 viram "12".
func To12Hour(hhmm string) (string, error) {
	m, err := ToMinutes(hhmm)
	if err != nil {
		return "", err
	}

	hour := m / 60
	minute := m % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period), nil
}

// --------------------------------------------------
// Sobreposição de intervalos [start, end)
// --------------------------------------------------

// Overlaps testa sobreposição real de minutos entre dois intervalos.
// Intervalos que apenas se tocam (aEnd == bStart) não conflitam.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	if aStart < bEnd && aEnd > bStart {
		return true
	}
	if aStart <= bStart && aEnd >= bEnd {
		return true
	}
	if bStart <= aStart && bEnd >= aEnd {
		return true
	}
	return false
}
