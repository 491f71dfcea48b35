package pos

import (
	"regexp"
	"strconv"
)

// Duração assumida quando nem o catálogo nem o nome informam nada
const DefaultServiceDurationMin = 30

var (
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*min`)
	hoursPattern   = regexp.MustCompile(`(?i)(\d+)\s*h(?:ora)?s?\s*(\d{1,2})?`)
)

// ServiceDuration resolve a duração de um serviço em minutos.
// Preferência: campo explícito do catálogo; senão, heurística sobre o nome
// ("Banho e tosa 45 min", "Tosa completa 1h30"); por fim, o padrão.
func ServiceDuration(s Service) int {
	if s.DurationMin > 0 {
		return s.DurationMin
	}
	if d := durationFromName(s.Name); d > 0 {
		return d
	}
	return DefaultServiceDurationMin
}

func durationFromName(name string) int {
	if m := minutesPattern.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}

	if m := hoursPattern.FindStringSubmatch(name); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil || hours <= 0 {
			return 0
		}
		minutes := 0
		if m[2] != "" {
			if n, err := strconv.Atoi(m[2]); err == nil {
				minutes = n
			}
		}
		return hours*60 + minutes
	}

	return 0
}
