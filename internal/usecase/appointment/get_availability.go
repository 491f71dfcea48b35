package appointment

import (
	"context"
	"time"

	domain "github.com/PamperedPaws01/groom-scheduler/internal/domain/appointment"
	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
	"github.com/PamperedPaws01/groom-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo           domain.Repository
	hours          domain.BusinessHours
	granularityMin int
	minLeadMinutes int
	tz             string
	now            nowFunc
}

func NewGetAvailability(
	repo domain.Repository,
	hours domain.BusinessHours,
	granularityMin int,
	minLeadMinutes int,
	tz string,
) *GetAvailability {
	if granularityMin <= 0 {
		granularityMin = domain.DefaultGranularityMin
	}
	return &GetAvailability{
		repo:           repo,
		hours:          hours,
		granularityMin: granularityMin,
		minLeadMinutes: minLeadMinutes,
		tz:             tz,
		now:            time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if in.DurationMin <= 0 {
		return nil, httperr.ValidationError{Fields: []string{"duration_min"}}
	}

	if _, err := uc.repo.GetStaff(ctx, in.StaffID); err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	date, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ValidationError{Fields: []string{"date"}}
	}

	openMin, closeMin, open := uc.hours.For(date.Weekday())
	if !open {
		return []domain.TimeSlot{}, nil
	}

	apps, err := uc.repo.ListByStaffAndDate(ctx, in.StaffID, in.Date)
	if err != nil {
		return nil, httperr.PersistenceError{Op: "list_by_staff_and_date", Err: err}
	}

	slots := domain.GenerateSlots(
		openMin,
		closeMin,
		domain.BookedIntervals(apps),
		in.DurationMin,
		uc.granularityMin,
	)

	// Filtro do próprio dia: exige antecedência mínima em relação a agora.
	// Política do chamador, fora do motor puro.
	now := uc.now().In(timezone.Location(uc.tz))
	if in.Date == now.Format("2006-01-02") {
		cutoff := now.Hour()*60 + now.Minute() + uc.minLeadMinutes

		filtered := slots[:0]
		for _, s := range slots {
			startMin, err := timeutil.ToMinutes(s.Start)
			if err != nil {
				continue
			}
			if startMin >= cutoff {
				filtered = append(filtered, s)
			}
		}
		slots = filtered
	}

	return slots, nil
}
