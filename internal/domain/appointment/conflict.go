package appointment

import (
	"github.com/PamperedPaws01/groom-scheduler/internal/models"
	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
)

// CheckConflict procura um agendamento não cancelado do mesmo profissional,
// na mesma data, sobrepondo [startMin, startMin+durationMin).
// Devolve o primeiro conflito encontrado (nil = livre). excludeID permite
// ignorar o próprio agendamento durante uma edição.
func CheckConflict(
	staffID uint,
	date string,
	startMin int,
	durationMin int,
	existing []models.Appointment,
	excludeID string,
) *models.Appointment {

	endMin := startMin + durationMin

	for i := range existing {
		ap := &existing[i]

		if ap.StaffID != staffID || ap.Date != date {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if excludeID != "" && ap.ID == excludeID {
			continue
		}

		iv, err := IntervalFor(ap)
		if err != nil {
			continue
		}

		if timeutil.Overlaps(startMin, endMin, iv.StartMin, iv.EndMin) {
			return ap
		}
	}

	return nil
}
