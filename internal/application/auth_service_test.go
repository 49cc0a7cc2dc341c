package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestAuthService() (*AuthService, *memUserRepo) {
	repo := newMemUserRepo()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, tokens, nil, testLogger(), nil, nil, ""), repo
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	svc, repo := newTestAuthService()

	res, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jane Doe",
		Email:    "  Jane@Example.COM ",
		Phone:    "+100",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Profile.Email != "jane@example.com" {
		t.Fatalf("email not normalized: %q", res.Profile.Email)
	}
	if res.Profile.Role != entity.RolePatient {
		t.Fatalf("role = %q, want patient", res.Profile.Role)
	}
	if res.Token == "" {
		t.Fatal("no token issued")
	}

	stored := repo.users[res.Profile.ID]
	if stored.PasswordHash == "secret123" || !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("password not stored as bcrypt digest: %q", stored.PasswordHash)
	}
	if !helpers.CheckPassword(stored.PasswordHash, "secret123") {
		t.Fatal("stored digest does not verify")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	in := RegisterInput{Name: "A", Email: "a@example.com", Phone: "+1", Password: "secret123"}

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
	// Same address with different casing is also taken.
	in.Email = "A@EXAMPLE.COM"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginSuccessAndFailureAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Phone: "+1", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	res, err := svc.Login(context.Background(), "a@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Fatal("no token issued on login")
	}

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret123")
	_, errWrongPw := svc.Login(context.Background(), "a@example.com", "wrong-pass")
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatal("failure modes must be indistinguishable to the caller")
	}
}

func TestUpdateProfilePartialAndRehash(t *testing.T) {
	svc, repo := newTestAuthService()
	res, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Phone: "+1", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	id := res.Profile.ID
	oldHash := repo.users[id].PasswordHash

	// Name only: everything else untouched, hash unchanged.
	upd, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: "Anna"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if upd.Profile.Name != "Anna" || upd.Profile.Email != "a@example.com" || upd.Profile.Phone != "+1" {
		t.Fatalf("partial update clobbered fields: %+v", upd.Profile)
	}
	if repo.users[id].PasswordHash != oldHash {
		t.Fatal("password hash changed without a new password")
	}
	if upd.Token == "" {
		t.Fatal("update should issue a fresh token")
	}

	// New password: hash replaced and verifiable.
	if _, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Password: "newsecret"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	newHash := repo.users[id].PasswordHash
	if newHash == oldHash {
		t.Fatal("password hash not replaced")
	}
	if !helpers.CheckPassword(newHash, "newsecret") {
		t.Fatal("new digest does not verify")
	}
	if _, err := svc.Login(context.Background(), "a@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("old password still accepted after change")
	}
}

func TestUpdateProfileCannotChangeRole(t *testing.T) {
	svc, repo := newTestAuthService()
	res, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Phone: "+1", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	id := res.Profile.ID

	if _, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: "Anna"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if repo.users[id].Role != entity.RolePatient {
		t.Fatalf("role changed through self-service path: %q", repo.users[id].Role)
	}
}

func TestAdminUpdateUserChangesRoleNotPassword(t *testing.T) {
	svc, repo := newTestAuthService()
	res, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Phone: "+1", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	id := res.Profile.ID
	oldHash := repo.users[id].PasswordHash

	p, err := svc.AdminUpdateUser(context.Background(), id, AdminUpdateInput{Role: entity.RoleDoctor})
	if err != nil {
		t.Fatalf("AdminUpdateUser: %v", err)
	}
	if p.Role != entity.RoleDoctor {
		t.Fatalf("role = %q, want doctor", p.Role)
	}
	if repo.users[id].PasswordHash != oldHash {
		t.Fatal("admin update must never touch the password hash")
	}

	if _, err := svc.AdminUpdateUser(context.Background(), "missing", AdminUpdateInput{Role: entity.RoleAdmin}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestIsAdmin(t *testing.T) {
	svc, repo := newTestAuthService()
	res, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Phone: "+1", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	id := res.Profile.ID

	ok, err := svc.IsAdmin(context.Background(), id)
	if err != nil || ok {
		t.Fatalf("IsAdmin = %v, %v; want false, nil", ok, err)
	}

	repo.users[id].Role = entity.RoleAdmin
	ok, err = svc.IsAdmin(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("IsAdmin = %v, %v; want true, nil", ok, err)
	}
}

func TestGetProfileNeverExposesHash(t *testing.T) {
	svc, _ := newTestAuthService()
	res, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Phone: "+1", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	p, err := svc.GetProfile(context.Background(), res.Profile.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.ID != res.Profile.ID || p.Email != "a@example.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}
