package appointment

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/PamperedPaws01/groom-scheduler/internal/models"
	"github.com/PamperedPaws01/groom-scheduler/internal/pos"
)

// --------------------------------------------------
// Fake Booking Store
// --------------------------------------------------

type fakeRepo struct {
	staff        map[uint]*models.Staff
	appointments map[string]*models.Appointment

	insertErr error
	updateErr error
	deleteErr error
	listErr   error

	insertCalls int
	nextID      uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		staff: map[uint]*models.Staff{
			1: {ID: 1, Name: "Marina", Active: true},
		},
		appointments: map[string]*models.Appointment{},
	}
}

func (r *fakeRepo) Insert(ctx context.Context, ap *models.Appointment) error {
	r.insertCalls++
	if r.insertErr != nil {
		return r.insertErr
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, ap *models.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) ListByStaffAndDate(
	ctx context.Context,
	staffID uint,
	date string,
) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.StaffID == staffID && ap.Date == date {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *fakeRepo) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeRepo) GetOrCreateCustomer(
	ctx context.Context,
	name, phone, email string,
) (*models.Customer, error) {
	r.nextID++
	return &models.Customer{ID: r.nextID, Name: name, Phone: phone, Email: email}, nil
}

func (r *fakeRepo) GetOrCreatePet(
	ctx context.Context,
	customerID uint,
	name, breed string,
) (*models.Pet, error) {
	r.nextID++
	return &models.Pet{ID: r.nextID, CustomerID: customerID, Name: name, Breed: breed}, nil
}

// --------------------------------------------------
// Fake POS Gateway
// --------------------------------------------------

type fakeGateway struct {
	services []pos.Service

	listErr   error
	createErr error
	deleteErr error
	lineErr   error

	created   []string
	deleted   []string
	lineItems map[string][]string
	seq       int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		services: []pos.Service{
			{ID: "s1", Name: "Banho 45 min", PriceCents: 4500},
			{ID: "s2", Name: "Corte de unhas", PriceCents: 1000},
			{ID: "s3", Name: "Tosa completa", PriceCents: 8000, DurationMin: 60},
		},
		lineItems: map[string][]string{},
	}
}

func (g *fakeGateway) ListServices(ctx context.Context, bypassCache bool) ([]pos.Service, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.services, nil
}

func (g *fakeGateway) CreateOrder(
	ctx context.Context,
	staffID uint,
	totalCents int64,
	note string,
) (string, error) {
	if g.createErr != nil {
		return "", g.createErr
	}
	g.seq++
	id := fmt.Sprintf("ord-%d", g.seq)
	g.created = append(g.created, id)
	return id, nil
}

func (g *fakeGateway) AddLineItem(ctx context.Context, orderID, serviceID string) error {
	if g.lineErr != nil {
		return g.lineErr
	}
	g.lineItems[orderID] = append(g.lineItems[orderID], serviceID)
	return nil
}

func (g *fakeGateway) DeleteOrder(ctx context.Context, orderID string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, orderID)
	return nil
}
