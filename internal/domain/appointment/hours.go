package appointment

import (
	"fmt"
	"time"

	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
)

// ===============================
// Business Hours
// ===============================

// DayHours são os horários de abertura/fechamento em "HH:MM".
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHours mapeia dia da semana -> expediente. Configuração injetada,
// não persistida por agendamento. Dias ausentes = salão fechado.
type BusinessHours map[time.Weekday]DayHours

func (bh BusinessHours) Validate() error {
	for day, h := range bh {
		open, err := timeutil.ToMinutes(h.Open)
		if err != nil {
			return fmt.Errorf("business hours %s: %w", day, err)
		}
		close, err := timeutil.ToMinutes(h.Close)
		if err != nil {
			return fmt.Errorf("business hours %s: %w", day, err)
		}
		if open >= close {
			return fmt.Errorf("business hours %s: open %s must precede close %s", day, h.Open, h.Close)
		}
	}
	return nil
}

// For devolve o expediente do dia em minutos desde a meia-noite.
func (bh BusinessHours) For(day time.Weekday) (openMin, closeMin int, ok bool) {
	h, found := bh[day]
	if !found {
		return 0, 0, false
	}

	openMin, err := timeutil.ToMinutes(h.Open)
	if err != nil {
		return 0, 0, false
	}
	closeMin, err = timeutil.ToMinutes(h.Close)
	if err != nil {
		return 0, 0, false
	}
	return openMin, closeMin, true
}
