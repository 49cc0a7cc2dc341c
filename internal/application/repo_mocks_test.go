package application

import (
	"context"
	"strconv"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
)

// map-backed repositories for service tests

type memUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	u.ID = "u-" + strconv.Itoa(r.seq)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memAppointmentRepo struct {
	appts map[string]*entity.Appointment
	seq   int
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appts: map[string]*entity.Appointment{}}
}

func (r *memAppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	r.seq++
	a.ID = "a-" + strconv.Itoa(r.seq)
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAppointmentRepo) List(_ context.Context) ([]entity.Appointment, error) {
	out := make([]entity.Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByPatient(_ context.Context, patientID string) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) Update(_ context.Context, a *entity.Appointment) error {
	if _, ok := r.appts[a.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.appts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.appts, id)
	return nil
}

type memMedicineRepo struct {
	meds    map[string]*entity.Medicine
	reviews map[string][]entity.Review
	seq     int
}

func newMemMedicineRepo() *memMedicineRepo {
	return &memMedicineRepo{meds: map[string]*entity.Medicine{}, reviews: map[string][]entity.Review{}}
}

func (r *memMedicineRepo) Create(_ context.Context, m *entity.Medicine) error {
	for _, existing := range r.meds {
		if existing.Name == m.Name && existing.Manufacturer == m.Manufacturer {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	m.ID = "m-" + strconv.Itoa(r.seq)
	cp := *m
	r.meds[m.ID] = &cp
	return nil
}

func (r *memMedicineRepo) GetByID(_ context.Context, id string) (*entity.Medicine, error) {
	m, ok := r.meds[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	cp.Reviews = r.reviews[id]
	return &cp, nil
}

func (r *memMedicineRepo) List(_ context.Context, keyword string) ([]entity.Medicine, error) {
	out := make([]entity.Medicine, 0, len(r.meds))
	for _, m := range r.meds {
		out = append(out, *m)
	}
	return out, nil
}

func (r *memMedicineRepo) Update(_ context.Context, m *entity.Medicine) error {
	if _, ok := r.meds[m.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *m
	r.meds[m.ID] = &cp
	return nil
}

func (r *memMedicineRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.meds[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.meds, id)
	return nil
}

func (r *memMedicineRepo) AddReview(_ context.Context, rev *entity.Review) error {
	for _, existing := range r.reviews[rev.MedicineID] {
		if existing.UserID == rev.UserID {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	rev.ID = "r-" + strconv.Itoa(r.seq)
	r.reviews[rev.MedicineID] = append(r.reviews[rev.MedicineID], *rev)
	return nil
}

func (r *memMedicineRepo) ListReviews(_ context.Context, medicineID string) ([]entity.Review, error) {
	return r.reviews[medicineID], nil
}

func (r *memMedicineRepo) UpdateAggregates(_ context.Context, medicineID string, rating float64, numReviews int) error {
	m, ok := r.meds[medicineID]
	if !ok {
		return repository.ErrNotFound
	}
	m.Rating = rating
	m.NumReviews = numReviews
	return nil
}

var (
	_ repository.UserRepository        = (*memUserRepo)(nil)
	_ repository.AppointmentRepository = (*memAppointmentRepo)(nil)
	_ repository.MedicineRepository    = (*memMedicineRepo)(nil)
)
