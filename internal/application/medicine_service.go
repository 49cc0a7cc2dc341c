package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
)

// MedicineService handles the catalog and its reviews. Keyword search
// goes through Elasticsearch when configured, with the SQL repository
// as fallback; catalog writes re-index the document best effort.
type MedicineService struct {
	Repo    repository.MedicineRepository
	Users   repository.UserRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewMedicineService(repo repository.MedicineRepository, users repository.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *MedicineService {
	return &MedicineService{Repo: repo, Users: users, Logger: logger, ES: es, ESIndex: esIndex}
}

type MedicineInput struct {
	Name                 string
	Description          string
	Price                float64
	Category             string
	Manufacturer         string
	CountInStock         int
	PrescriptionRequired bool
}

// List returns the catalog, filtered by keyword when given.
func (s *MedicineService) List(ctx context.Context, keyword string) ([]entity.Medicine, error) {
	if keyword != "" && s.ES != nil && s.ESIndex != "" {
		if out, err := s.searchES(ctx, keyword); err == nil {
			return out, nil
		} else {
			s.Logger.WithError(err).Warn("es search failed, falling back to sql")
		}
	}
	return s.Repo.List(ctx, keyword)
}

// Get returns a medicine with its reviews.
func (s *MedicineService) Get(ctx context.Context, id string) (*entity.Medicine, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Create adds a catalog item attributed to the admin who created it.
func (s *MedicineService) Create(ctx context.Context, createdBy string, in MedicineInput) (*entity.Medicine, error) {
	m := &entity.Medicine{
		Name:                 in.Name,
		Description:          in.Description,
		Price:                in.Price,
		Category:             in.Category,
		Manufacturer:         in.Manufacturer,
		CountInStock:         in.CountInStock,
		PrescriptionRequired: in.PrescriptionRequired,
		CreatedBy:            createdBy,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMedicineExists
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"medicine_id": m.ID, "name": m.Name}).Info("medicine created")
	s.index(ctx, m)
	return m, nil
}

type UpdateMedicineInput struct {
	Name                 string
	Description          string
	Price                *float64
	Category             string
	Manufacturer         string
	CountInStock         *int
	PrescriptionRequired *bool
}

// Update applies a partial update; absent fields stay unchanged.
func (s *MedicineService) Update(ctx context.Context, id string, in UpdateMedicineInput) (*entity.Medicine, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		m.Name = in.Name
	}
	if in.Description != "" {
		m.Description = in.Description
	}
	if in.Price != nil {
		m.Price = *in.Price
	}
	if in.Category != "" {
		m.Category = in.Category
	}
	if in.Manufacturer != "" {
		m.Manufacturer = in.Manufacturer
	}
	if in.CountInStock != nil {
		m.CountInStock = *in.CountInStock
	}
	if in.PrescriptionRequired != nil {
		m.PrescriptionRequired = *in.PrescriptionRequired
	}
	if err := s.Repo.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.index(ctx, m)
	return m, nil
}

// Delete removes a medicine and its search document.
func (s *MedicineService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.deindex(ctx, id)
	return nil
}

// AddReview records a single review per user and recomputes the
// aggregate rating and review count.
func (s *MedicineService) AddReview(ctx context.Context, medicineID, userID string, rating int, comment string) (*entity.Medicine, error) {
	m, err := s.Get(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}

	rev := &entity.Review{
		MedicineID: m.ID,
		UserID:     u.ID,
		UserName:   u.Name,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.Repo.AddReview(ctx, rev); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	reviews, err := s.Repo.ListReviews(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	m.NumReviews = len(reviews)
	m.Rating = float64(sum) / float64(len(reviews))
	m.Reviews = reviews
	if err := s.Repo.UpdateAggregates(ctx, m.ID, m.Rating, m.NumReviews); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"medicine_id": m.ID, "rating": m.Rating, "num_reviews": m.NumReviews}).Info("review added")
	s.index(ctx, m)
	return m, nil
}

func (s *MedicineService) index(ctx context.Context, m *entity.Medicine) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":           m.ID,
		"name":         m.Name,
		"description":  m.Description,
		"category":     m.Category,
		"manufacturer": m.Manufacturer,
		"price":        m.Price,
		"rating":       m.Rating,
		"updated_at":   m.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: m.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("medicine_id", m.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithFields(logrus.Fields{"status": res.Status(), "medicine_id": m.ID}).Warn("es index response error")
	}
}

func (s *MedicineService) deindex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("medicine_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

func (s *MedicineService) searchES(ctx context.Context, keyword string) ([]entity.Medicine, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  keyword,
				"fields": []string{"name^2", "description", "category", "manufacturer"},
			},
		},
		"size": 50,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.New("es search: " + res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	// Hydrate from the store so responses carry full catalog rows.
	out := make([]entity.Medicine, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		m, err := s.Repo.GetByID(ctx, h.ID)
		if err != nil {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}
