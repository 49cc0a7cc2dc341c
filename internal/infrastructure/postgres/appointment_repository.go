package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `id, patient_id, doctor_id, date, slot_start, slot_end, type, reason, symptoms, notes, status, created_at, updated_at`

func (r *AppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, date, slot_start, slot_end, type, reason, symptoms, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, a.PatientID, a.DoctorID, a.Date, a.TimeSlot.Start, a.TimeSlot.End, a.Type, a.Reason, a.Symptoms, a.Notes, a.Status)
	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	return scanAppointment(row)
}

func (r *AppointmentRepository) List(ctx context.Context) ([]entity.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY date`)
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE patient_id = $1 ORDER BY date`, patientID)
}

func (r *AppointmentRepository) list(ctx context.Context, query string, args ...any) ([]entity.Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	a.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET date = $1, slot_start = $2, slot_end = $3, type = $4, reason = $5,
		    symptoms = $6, notes = $7, status = $8, updated_at = $9
		WHERE id = $10
	`, a.Date, a.TimeSlot.Start, a.TimeSlot.End, a.Type, a.Reason, a.Symptoms, a.Notes, a.Status, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	a := &entity.Appointment{}
	if err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.TimeSlot.Start, &a.TimeSlot.End,
		&a.Type, &a.Reason, &a.Symptoms, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)
