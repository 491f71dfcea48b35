package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/PamperedPaws01/groom-scheduler/internal/audit"
	domain "github.com/PamperedPaws01/groom-scheduler/internal/domain/appointment"
	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
	"github.com/PamperedPaws01/groom-scheduler/internal/pos"
	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
	"github.com/PamperedPaws01/groom-scheduler/internal/timezone"
)

// ======================================================
// INPUT (ponteiro nil = campo não muda)
// ======================================================

type UpdateAppointmentInput struct {
	Date     *string
	Time     *string
	Services []string
	Status   *string
	Notes    *string

	OverrideConflict bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo    domain.Repository
	gateway pos.Gateway
	audit   *audit.Dispatcher
	log     *zap.Logger

	hours          domain.BusinessHours
	minLeadMinutes int
	tz             string
	now            nowFunc
}

func NewUpdateAppointment(
	repo domain.Repository,
	gateway pos.Gateway,
	auditD *audit.Dispatcher,
	log *zap.Logger,
	hours domain.BusinessHours,
	minLeadMinutes int,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:           repo,
		gateway:        gateway,
		audit:          auditD,
		log:            log,
		hours:          hours,
		minLeadMinutes: minLeadMinutes,
		tz:             tz,
		now:            time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateAppointmentInput,
) (*Result, error) {

	res := &Result{}

	// --------------------------------------------------
	// 1️⃣ Estado atual
	// --------------------------------------------------
	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	newDate := ap.Date
	if in.Date != nil {
		newDate = *in.Date
	}
	newTime := ap.StartTime
	if in.Time != nil {
		newTime = *in.Time
	}
	newServices := []string(ap.Services)
	if in.Services != nil {
		newServices = in.Services
	}

	scheduleChanged := newDate != ap.Date || newTime != ap.StartTime
	servicesChanged := in.Services != nil

	// --------------------------------------------------
	// 2️⃣ Recalcula duração/total se os serviços mudaram
	// --------------------------------------------------
	newDuration := ap.DurationMin
	newTotal := ap.TotalCents

	if servicesChanged {
		if len(newServices) == 0 {
			return nil, httperr.ValidationError{Fields: []string{"services"}}
		}
		resolved, err := resolveServices(ctx, uc.gateway, newServices)
		if err != nil {
			return nil, err
		}
		newDuration = resolved.DurationMin
		newTotal = resolved.TotalCents
	}

	// --------------------------------------------------
	// 3️⃣ Guard contra o NOVO horário (excluindo o próprio)
	// --------------------------------------------------
	if scheduleChanged || servicesChanged {
		startMin, err := timeutil.ToMinutes(newTime)
		if err != nil {
			return nil, httperr.ValidationError{Fields: []string{"time"}}
		}

		start, err := timezone.ParseDateTime(uc.tz, newDate, newTime)
		if err != nil {
			return nil, httperr.ValidationError{Fields: []string{"date"}}
		}

		openMin, closeMin, open := uc.hours.For(start.Weekday())
		if !open || startMin < openMin || startMin+newDuration > closeMin {
			return nil, httperr.ErrBusiness("outside_business_hours")
		}

		// remarcação também respeita a antecedência mínima
		if scheduleChanged {
			now := uc.now().In(timezone.Location(uc.tz))
			if start.Before(now.Add(time.Duration(uc.minLeadMinutes) * time.Minute)) {
				return nil, httperr.ErrBusiness("too_soon")
			}
		}

		existing, err := uc.repo.ListByStaffAndDate(ctx, ap.StaffID, newDate)
		if err != nil {
			return nil, httperr.PersistenceError{Op: "list_by_staff_and_date", Err: err}
		}

		if conflict := domain.CheckConflict(
			ap.StaffID,
			newDate,
			startMin,
			newDuration,
			existing,
			ap.ID,
		); conflict != nil && !in.OverrideConflict {
			return nil, httperr.ConflictError{Conflicting: conflict}
		}
	}

	// --------------------------------------------------
	// 4️⃣ Transição de status (máquina de estados do domínio)
	// --------------------------------------------------
	cancelling := false
	if in.Status != nil && *in.Status != ap.Status {
		now := timezone.NowIn(uc.tz)

		switch domain.Status(*in.Status) {
		case domain.StatusCancelled:
			if err := domain.Cancel(ap, now); err != nil {
				return nil, err
			}
			cancelling = true
		case domain.StatusConfirmed:
			if err := domain.Confirm(ap); err != nil {
				return nil, err
			}
		case domain.StatusCompleted:
			if err := domain.Complete(ap, now); err != nil {
				return nil, err
			}
		default:
			return nil, httperr.ValidationError{Fields: []string{"status"}}
		}
	}

	// --------------------------------------------------
	// 5️⃣ Espelho no POS: ordens são nota + itens montados na criação,
	//    então mudar é apagar e recriar, nunca patch parcial.
	//    Falha aqui NÃO bloqueia o update local (o store local é a
	//    fonte de verdade da agenda; o POS é espelho de cobrança).
	// --------------------------------------------------
	if ap.PosOrderID != nil {
		switch {
		case cancelling:
			if err := uc.gateway.DeleteOrder(ctx, *ap.PosOrderID); err != nil {
				res.compensationFailed(uc.log, "delete_pos_order_on_cancel", err)
			} else {
				ap.PosOrderID = nil
			}

		case scheduleChanged || servicesChanged:
			oldOrderID := *ap.PosOrderID

			resolved, rerr := resolveServices(ctx, uc.gateway, newServices)
			if rerr != nil {
				res.compensationFailed(uc.log, "replace_pos_order", rerr)
				break
			}

			note := orderNote(&ap.Customer, &ap.Pet, newDate, newTime, newServices)

			newOrderID, cerr := uc.gateway.CreateOrder(ctx, ap.StaffID, newTotal, note)
			if cerr != nil {
				// mantém a ordem antiga e registra a divergência
				res.compensationFailed(uc.log, "replace_pos_order", cerr)
				break
			}

			addLineItems(ctx, uc.gateway, uc.log, newOrderID, resolved.IDs)

			if derr := uc.gateway.DeleteOrder(ctx, oldOrderID); derr != nil {
				res.compensationFailed(uc.log, "delete_old_pos_order", derr)
			}

			ap.PosOrderID = &newOrderID
		}
	}

	// --------------------------------------------------
	// 6️⃣ Update local, sem rollback do POS em caso de falha
	// --------------------------------------------------
	ap.Date = newDate
	ap.StartTime = newTime
	ap.Services = newServices
	ap.DurationMin = newDuration
	ap.TotalCents = newTotal
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return res, httperr.PersistenceError{Op: "update", Err: err}
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":       ap.Date,
			"start_time": ap.StartTime,
			"status":     ap.Status,
			"override":   in.OverrideConflict,
		},
	})

	res.Appointment = ap
	return res, nil
}
