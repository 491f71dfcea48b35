package appointment

import (
	"context"

	"github.com/PamperedPaws01/groom-scheduler/internal/models"
)

// Repository é o Booking Store: a fonte de verdade local dos agendamentos.
type Repository interface {
	// -------- Appointment --------
	Insert(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	Get(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListByStaffAndDate(
		ctx context.Context,
		staffID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Staff --------
	GetStaff(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	// -------- Customer / Pet --------
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	GetOrCreatePet(
		ctx context.Context,
		customerID uint,
		name string,
		breed string,
	) (*models.Pet, error)
}
