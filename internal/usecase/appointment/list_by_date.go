package appointment

import (
	"context"

	domain "github.com/PamperedPaws01/groom-scheduler/internal/domain/appointment"
	"github.com/PamperedPaws01/groom-scheduler/internal/dto"
	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	staffID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, httperr.PersistenceError{Op: "list_by_staff_and_date", Err: err}
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]

		endTime := ""
		if startMin, err := timeutil.ToMinutes(ap.StartTime); err == nil {
			endTime = timeutil.FromMinutes(startMin + ap.DurationMin)
		}
		display, _ := timeutil.To12Hour(ap.StartTime)

		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date,
			StartTime:    ap.StartTime,
			EndTime:      endTime,
			DisplayTime:  display,
			Status:       ap.Status,
			CustomerName: ap.Customer.Name,
			PetName:      ap.Pet.Name,
			Services:     []string(ap.Services),
		})
	}

	return out, nil
}
