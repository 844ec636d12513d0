package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/katiepdx/todo-app-be/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]dom.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]dom.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (dom.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	u := dom.User{ID: f.nextID, Email: email, PasswordHash: passwordHash}
	f.nextID++
	f.byEmail[email] = u
	return u, nil
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	u, err := svc.Signup(context.Background(), "a@test.com", "pw1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.ID == 0 {
		t.Error("signup returned zero user id")
	}
	if u.PasswordHash == "pw1" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw1")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"blank email", "   ", "pw"},
		{"empty password", "a@test.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Signup(context.Background(), tt.email, tt.password); !errors.Is(err, ErrMissingFields) {
				t.Errorf("err = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	if _, err := svc.Signup(context.Background(), "a@test.com", "pw1"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "a@test.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second signup err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)
	created, err := svc.Signup(context.Background(), "a@test.com", "pw1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "a@test.com", "pw1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("authenticated id = %d, want %d", u.ID, created.ID)
	}

	// unknown email and wrong password must be indistinguishable
	if _, err := svc.Authenticate(context.Background(), "nobody@test.com", "pw1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@test.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
}
