package pos

import "testing"

func TestServiceDuration(t *testing.T) {
	cases := []struct {
		name string
		svc  Service
		want int
	}{
		{"explicit field wins", Service{Name: "Banho 45 min", DurationMin: 60}, 60},
		{"minutes in name", Service{Name: "Banho e tosa 45 min"}, 45},
		{"minutes no space", Service{Name: "Hidratação 20min"}, 20},
		{"hours in name", Service{Name: "Tosa completa 1h30"}, 90},
		{"whole hour", Service{Name: "Spa day 2h"}, 120},
		{"hours word", Service{Name: "Pacote premium 2 horas"}, 120},
		{"no hint", Service{Name: "Corte de unhas"}, DefaultServiceDurationMin},
	}

	for _, c := range cases {
		if got := ServiceDuration(c.svc); got != c.want {
			t.Fatalf("%s: ServiceDuration = %d, want %d", c.name, got, c.want)
		}
	}
}
