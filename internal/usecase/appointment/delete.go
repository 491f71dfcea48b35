package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/PamperedPaws01/groom-scheduler/internal/audit"
	domain "github.com/PamperedPaws01/groom-scheduler/internal/domain/appointment"
	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
	"github.com/PamperedPaws01/groom-scheduler/internal/pos"
)

type DeleteAppointment struct {
	repo    domain.Repository
	gateway pos.Gateway
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	gateway pos.Gateway,
	auditD *audit.Dispatcher,
	log *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:    repo,
		gateway: gateway,
		audit:   auditD,
		log:     log,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id string,
) (*Result, error) {

	res := &Result{}

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// --------------------------------------------------
	// 1️⃣ POS primeiro: melhor uma ordem órfã no POS do que um
	//    registro local apontando para ordem inexistente.
	//    Falha não bloqueia o delete local (não vamos prender um
	//    horário na agenda por causa de um registro de cobrança).
	// --------------------------------------------------
	if ap.PosOrderID != nil {
		if derr := uc.gateway.DeleteOrder(ctx, *ap.PosOrderID); derr != nil {
			res.compensationFailed(uc.log, "delete_pos_order", derr)
		}
	}

	// --------------------------------------------------
	// 2️⃣ Delete local
	// --------------------------------------------------
	if err := uc.repo.Delete(ctx, id); err != nil {
		return res, httperr.PersistenceError{Op: "delete", Err: err}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"staff_id": ap.StaffID,
			"date":     ap.Date,
		},
	})

	res.Appointment = ap
	return res, nil
}
