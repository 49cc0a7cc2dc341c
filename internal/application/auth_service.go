package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
	"github.com/carepoint-dev/carepoint-api/pkg/mailer"
)

// AuthService orchestrates registration, login, and profile mutation.
// It is the only code path that writes PasswordHash, always via the
// credential hasher.
type AuthService struct {
	Repo      repository.UserRepository
	Tokens    *helpers.TokenManager
	Redis     *redis.Client
	Logger    *logrus.Logger
	Pub       *helpers.RabbitPublisher
	GCS       *storage.Client
	GCSBucket string
}

func NewAuthService(repo repository.UserRepository, tokens *helpers.TokenManager, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher, gcs *storage.Client, gcsBucket string) *AuthService {
	return &AuthService{Repo: repo, Tokens: tokens, Redis: rdb, Logger: logger, Pub: pub, GCS: gcs, GCSBucket: gcsBucket}
}

// AuthResult is returned by flows that attest an identity.
type AuthResult struct {
	Profile     entity.PublicProfile
	Token       string
	TokenExpiry time.Time
}

// NormalizeEmail lowercases and trims an email so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register creates a user with the default patient role and issues a
// token for the new subject. The existence pre-check is a fast path;
// the users.email unique index is the real uniqueness guard, so a
// duplicate insert is also reported as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := NormalizeEmail(in.Email)

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Role:         entity.RolePatient,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	s.enqueueEmail(ctx, u.Email, "welcome", map[string]any{"name": u.Name})

	return s.issue(ctx, u)
}

// Login validates credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller; the internal
// distinction exists only in the audit log.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil || u == nil {
		s.Logger.WithField("email", NormalizeEmail(email)).Info("login failed: unknown email")
		return nil, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		s.Logger.WithField("user_id", u.ID).Info("login failed: password mismatch")
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

// GetProfile returns the public projection for the subject.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.PublicProfile, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}
	p := u.Public()
	return &p, nil
}

type UpdateProfileInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Address  *entity.Address
}

// UpdateProfile applies a partial self-service update. Empty fields are
// left unchanged; a supplied password is hashed before persist. The
// role can never change through this path. A fresh token is issued
// since identity-relevant fields may have changed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*AuthResult, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = NormalizeEmail(in.Email)
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Address != nil {
		u.Address = in.Address
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Logger.WithField("user_id", u.ID).Info("profile updated")
	return s.issue(ctx, u)
}

// UploadProfilePicture stores the image in GCS and saves its public URL
// on the record.
func (s *AuthService) UploadProfilePicture(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return "", ErrNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.ProfilePicture = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}

type AdminUpdateInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

// AdminUpdateUser is the privileged mutation: it may change the role and
// contact fields of an arbitrary subject, and never touches the password.
func (s *AuthService) AdminUpdateUser(ctx context.Context, id string, in AdminUpdateInput) (*entity.PublicProfile, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = NormalizeEmail(in.Email)
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Role != "" {
		u.Role = in.Role
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user updated by admin")
	p := u.Public()
	return &p, nil
}

// ListUsers returns public projections of every user.
func (s *AuthService) ListUsers(ctx context.Context) ([]entity.PublicProfile, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PublicProfile, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// GetUser returns a public projection by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.PublicProfile, error) {
	return s.GetProfile(ctx, id)
}

// DeleteUser removes a user record.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.Logger.WithField("user_id", id).Info("user deleted")
	return nil
}

// IsAdmin reports whether the subject holds the admin role. Used by the
// admin gate before privileged operations run.
func (s *AuthService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return false, ErrNotFound
	}
	return u.IsAdmin(), nil
}

func (s *AuthService) issue(ctx context.Context, u *entity.User) (*AuthResult, error) {
	token, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		return nil, err
	}
	s.cacheSession(ctx, u, exp)
	return &AuthResult{Profile: u.Public(), Token: token, TokenExpiry: exp}, nil
}

// cacheSession stores session metadata in Redis for dashboards and
// audit. Token verification never depends on it.
func (s *AuthService) cacheSession(ctx context.Context, u *entity.User, exp time.Time) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(u.ID)
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":   u.ID,
		"email":     u.Email,
		"name":      u.Name,
		"role":      u.Role,
		"issued_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, time.Until(exp))
	if _, err := pipe.Exec(ctx); err != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

func (s *AuthService) enqueueEmail(ctx context.Context, to, template string, data map[string]any) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Template: template, Data: data}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("template", template).Warn("email enqueue failed")
	}
}
