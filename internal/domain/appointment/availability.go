package appointment

import (
	"github.com/PamperedPaws01/groom-scheduler/internal/models"
	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
)

// Granularidade padrão entre candidatos (minutos)
const DefaultGranularityMin = 15

type AvailabilityInput struct {
	StaffID     uint
	Date        string // "2006-01-02"
	DurationMin int
}

// BookedInterval é o intervalo [start, end) ocupado por um agendamento,
// em minutos desde a meia-noite. Derivado, nunca persistido.
type BookedInterval struct {
	StartMin int
	EndMin   int
}

type TimeSlot struct {
	Start   string `json:"start"`   // "09:30"
	End     string `json:"end"`     // "10:00"
	Display string `json:"display"` // "9:30 AM"
}

// IntervalFor converte o horário/duração gravados em um BookedInterval.
func IntervalFor(ap *models.Appointment) (BookedInterval, error) {
	start, err := timeutil.ToMinutes(ap.StartTime)
	if err != nil {
		return BookedInterval{}, err
	}
	return BookedInterval{StartMin: start, EndMin: start + ap.DurationMin}, nil
}

// BookedIntervals projeta os agendamentos não cancelados do dia.
// Horários malformados são ignorados (nunca bloqueiam a agenda inteira).
func BookedIntervals(apps []models.Appointment) []BookedInterval {
	intervals := make([]BookedInterval, 0, len(apps))
	for i := range apps {
		if Status(apps[i].Status) == StatusCancelled {
			continue
		}
		iv, err := IntervalFor(&apps[i])
		if err != nil {
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

// GenerateSlots enumera os horários de início válidos entre openMin e
// closeMin, em ordem crescente. Função pura: recalculável a cada request,
// sem estado escondido.
func GenerateSlots(
	openMin int,
	closeMin int,
	booked []BookedInterval,
	durationMin int,
	stepMin int,
) []TimeSlot {

	if durationMin <= 0 || stepMin <= 0 {
		return []TimeSlot{}
	}

	slots := []TimeSlot{}

	for cur := openMin; cur+durationMin <= closeMin; cur += stepMin {
		end := cur + durationMin

		conflict := false
		for _, b := range booked {
			if timeutil.Overlaps(cur, end, b.StartMin, b.EndMin) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		start := timeutil.FromMinutes(cur)
		display, _ := timeutil.To12Hour(start)

		slots = append(slots, TimeSlot{
			Start:   start,
			End:     timeutil.FromMinutes(end),
			Display: display,
		})
	}

	return slots
}
