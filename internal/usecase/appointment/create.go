package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PamperedPaws01/groom-scheduler/internal/audit"
	domain "github.com/PamperedPaws01/groom-scheduler/internal/domain/appointment"
	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
	"github.com/PamperedPaws01/groom-scheduler/internal/models"
	"github.com/PamperedPaws01/groom-scheduler/internal/pos"
	"github.com/PamperedPaws01/groom-scheduler/internal/slotlock"
	"github.com/PamperedPaws01/groom-scheduler/internal/timeutil"
	"github.com/PamperedPaws01/groom-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	StaffID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	PetName  string
	PetBreed string

	Services []string

	Date  string // "2006-01-02"
	Time  string // "HH:MM"
	Notes string

	// Confirmação explícita do usuário para aceitar double-booking
	OverrideConflict bool
}

func (in *CreateAppointmentInput) missingFields() []string {
	var missing []string
	if in.StaffID == 0 {
		missing = append(missing, "staff_id")
	}
	if in.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if in.CustomerPhone == "" {
		missing = append(missing, "customer_phone")
	}
	if in.PetName == "" {
		missing = append(missing, "pet_name")
	}
	if len(in.Services) == 0 {
		missing = append(missing, "services")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if in.Time == "" {
		missing = append(missing, "time")
	}
	return missing
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	gateway pos.Gateway
	locker  *slotlock.Locker
	audit   *audit.Dispatcher
	log     *zap.Logger

	hours          domain.BusinessHours
	minLeadMinutes int
	tz             string
	now            nowFunc
}

func NewCreateAppointment(
	repo domain.Repository,
	gateway pos.Gateway,
	locker *slotlock.Locker,
	auditD *audit.Dispatcher,
	log *zap.Logger,
	hours domain.BusinessHours,
	minLeadMinutes int,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:           repo,
		gateway:        gateway,
		locker:         locker,
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

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*Result, error) {

	res := &Result{}

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios (nenhum efeito colateral ainda)
	// --------------------------------------------------
	if missing := in.missingFields(); len(missing) > 0 {
		return nil, httperr.ValidationError{Fields: missing}
	}

	start, err := timezone.ParseDateTime(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ValidationError{Fields: []string{"date", "time"}}
	}

	startMin, err := timeutil.ToMinutes(in.Time)
	if err != nil {
		return nil, httperr.ValidationError{Fields: []string{"time"}}
	}

	// --------------------------------------------------
	// 2️⃣ Duração e total recalculados do catálogo do POS
	// --------------------------------------------------
	services, err := resolveServices(ctx, uc.gateway, in.Services)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Dentro do expediente + antecedência mínima
	// --------------------------------------------------
	openMin, closeMin, open := uc.hours.For(start.Weekday())
	if !open || startMin < openMin || startMin+services.DurationMin > closeMin {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	now := uc.now().In(timezone.Location(uc.tz))
	if start.Before(now.Add(time.Duration(uc.minLeadMinutes) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4️⃣ Lock consultivo por (profissional, data), se configurado
	// --------------------------------------------------
	release, locked, err := uc.locker.Acquire(ctx, in.StaffID, in.Date)
	if err != nil {
		return nil, httperr.PersistenceError{Op: "slot_lock", Err: err}
	}
	if !locked {
		return nil, httperr.ErrBusiness("slot_busy")
	}
	defer release()

	// --------------------------------------------------
	// 5️⃣ Double-booking guard
	// --------------------------------------------------
	existing, err := uc.repo.ListByStaffAndDate(ctx, in.StaffID, in.Date)
	if err != nil {
		return nil, httperr.PersistenceError{Op: "list_by_staff_and_date", Err: err}
	}

	if conflict := domain.CheckConflict(
		in.StaffID,
		in.Date,
		startMin,
		services.DurationMin,
		existing,
		"",
	); conflict != nil && !in.OverrideConflict {
		return nil, httperr.ConflictError{Conflicting: conflict}
	}

	// --------------------------------------------------
	// 6️⃣ Cliente e pet (get or create)
	// --------------------------------------------------
	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, httperr.PersistenceError{Op: "get_or_create_customer", Err: err}
	}

	pet, err := uc.repo.GetOrCreatePet(ctx, customer.ID, in.PetName, in.PetBreed)
	if err != nil {
		return nil, httperr.PersistenceError{Op: "get_or_create_pet", Err: err}
	}

	// --------------------------------------------------
	// 7️⃣ Ordem no POS ANTES do insert local: o store nunca
	//    referencia uma ordem que não existe
	// --------------------------------------------------
	note := orderNote(customer, pet, in.Date, in.Time, in.Services)

	orderID, err := uc.gateway.CreateOrder(ctx, in.StaffID, services.TotalCents, note)
	if err != nil {
		return nil, err
	}

	addLineItems(ctx, uc.gateway, uc.log, orderID, services.IDs)

	// --------------------------------------------------
	// 8️⃣ Insert local; falha ⇒ compensa apagando a ordem
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:          uuid.NewString(),
		StaffID:     in.StaffID,
		CustomerID:  customer.ID,
		PetID:       pet.ID,
		Services:    models.ServiceList(in.Services),
		Date:        in.Date,
		StartTime:   in.Time,
		DurationMin: services.DurationMin,
		Status:      string(domain.InitialStatus()),
		PosOrderID:  &orderID,
		TotalCents:  services.TotalCents,
		Notes:       in.Notes,
	}

	if err := uc.repo.Insert(ctx, ap); err != nil {
		if derr := uc.gateway.DeleteOrder(ctx, orderID); derr != nil {
			res.compensationFailed(uc.log, "delete_pos_order", derr)
		}
		return res, httperr.PersistenceError{Op: "insert", Err: err}
	}

	// --------------------------------------------------
	// 9️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"staff_id":     ap.StaffID,
			"date":         ap.Date,
			"start_time":   ap.StartTime,
			"pos_order_id": orderID,
			"override":     in.OverrideConflict,
		},
	})

	res.Appointment = ap
	return res, nil
}
