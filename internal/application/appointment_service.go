package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
	"github.com/carepoint-dev/carepoint-api/pkg/mailer"
)

// AppointmentService handles booking CRUD. Scheduling conflict detection
// is deliberately out of scope; the store is the source of truth.
type AppointmentService struct {
	Repo   repository.AppointmentRepository
	Users  repository.UserRepository
	Logger *logrus.Logger
	Pub    *helpers.RabbitPublisher
}

func NewAppointmentService(repo repository.AppointmentRepository, users repository.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher) *AppointmentService {
	return &AppointmentService{Repo: repo, Users: users, Logger: logger, Pub: pub}
}

type CreateAppointmentInput struct {
	DoctorID string
	Date     time.Time
	TimeSlot entity.TimeSlot
	Type     string
	Reason   string
	Symptoms []string
	Notes    string
}

// Create books an appointment for the calling patient and notifies them
// by email (best effort).
func (s *AppointmentService) Create(ctx context.Context, patientID string, in CreateAppointmentInput) (*entity.Appointment, error) {
	a := &entity.Appointment{
		PatientID: patientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		TimeSlot:  in.TimeSlot,
		Type:      in.Type,
		Reason:    in.Reason,
		Symptoms:  in.Symptoms,
		Notes:     in.Notes,
		Status:    entity.StatusScheduled,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"appointment_id": a.ID, "patient_id": patientID}).Info("appointment created")
	s.notify(ctx, patientID, "appointment_scheduled", map[string]any{"date": a.Date.Format("2006-01-02")})
	return a, nil
}

// List returns every appointment. Admin-gated at the route level.
func (s *AppointmentService) List(ctx context.Context) ([]entity.Appointment, error) {
	return s.Repo.List(ctx)
}

// ListMine returns the caller's appointments.
func (s *AppointmentService) ListMine(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return s.Repo.ListByPatient(ctx, patientID)
}

// Get returns an appointment. A caller who is neither a participant nor
// an admin gets ErrForbidden.
func (s *AppointmentService) Get(ctx context.Context, id, callerID string) (*entity.Appointment, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.PatientID != callerID && a.DoctorID != callerID {
		caller, err := s.Users.GetByID(ctx, callerID)
		if err != nil || caller == nil || !caller.IsAdmin() {
			return nil, ErrForbidden
		}
	}
	return a, nil
}

type UpdateAppointmentInput struct {
	Status   string
	Reason   string
	Date     *time.Time
	TimeSlot *entity.TimeSlot
	Notes    string
}

// Update applies a partial update; absent fields stay unchanged.
func (s *AppointmentService) Update(ctx context.Context, id, callerID string, in UpdateAppointmentInput) (*entity.Appointment, error) {
	a, err := s.Get(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if in.Status != "" {
		a.Status = in.Status
	}
	if in.Reason != "" {
		a.Reason = in.Reason
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.TimeSlot != nil {
		a.TimeSlot = *in.TimeSlot
	}
	if in.Notes != "" {
		a.Notes = in.Notes
	}
	if err := s.Repo.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"appointment_id": a.ID, "status": a.Status}).Info("appointment updated")
	s.notify(ctx, a.PatientID, "appointment_updated", map[string]any{"status": a.Status})
	return a, nil
}

// Delete removes an appointment, subject to the same access rule as Get.
func (s *AppointmentService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.Get(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AppointmentService) notify(ctx context.Context, patientID, template string, data map[string]any) {
	if s.Pub == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, patientID)
	if err != nil || u == nil {
		return
	}
	data["name"] = u.Name
	job := mailer.EmailJob{To: u.Email, Template: template, Data: data}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("template", template).Warn("email enqueue failed")
	}
}
