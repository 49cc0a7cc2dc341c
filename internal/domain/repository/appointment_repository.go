package repository

import (
	"context"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
)

// AppointmentRepository defines the persistence boundary for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	List(ctx context.Context) ([]entity.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) error
	Delete(ctx context.Context, id string) error
}
