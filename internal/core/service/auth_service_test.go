package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type stubUserRepository struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: map[string]*domain.User{}, nextID: 1}
}

func (r *stubUserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.Username] = &stored
	return &stored, nil
}

func (r *stubUserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepository) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *stubUserRepository) UpdateRole(_ context.Context, id int64, role domain.Role) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			user.Role = role
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepository) Delete(_ context.Context, id int64) error {
	for username, user := range r.users {
		if user.ID == id {
			delete(r.users, username)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) Issue(_ *domain.User, _ time.Time) (string, error) {
	return s.token, s.err
}

type stubAuditSink struct {
	events []ports.AuditEvent
}

func (s *stubAuditSink) Enqueue(event ports.AuditEvent) {
	s.events = append(s.events, event)
}

func newAuthFixture() (*AuthService, *stubUserRepository, *stubAuditSink) {
	repo := newStubUserRepository()
	audit := &stubAuditSink{}
	svc := NewAuthService(repo, &stubTokenIssuer{token: "tok"}, audit, zerolog.Nop())
	return svc, repo, audit
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
		Role:     domain.RoleCliente,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}

	stored := repo.users["alice"]
	if stored.PasswordHash == "s3cretpass" {
		t.Fatal("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cretpass")) != nil {
		t.Fatal("stored hash does not match password")
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Password: "s3cretpass",
		Role:     domain.Role("superuser"),
	})
	if !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture()
	input := ports.RegisterInput{Username: "alice", Password: "s3cretpass", Role: domain.RoleCliente}

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Validate_CollapsesFailureCauses(t *testing.T) {
	svc, _, _ := newAuthFixture()
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "s3cretpass", Role: domain.RoleCliente,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown account must be indistinguishable.
	_, wrongPass := svc.Validate(context.Background(), "alice", "wrong")
	_, noAccount := svc.Validate(context.Background(), "nobody", "s3cretpass")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noAccount, domain.ErrInvalidCredentials) {
		t.Fatalf("missing account: expected ErrInvalidCredentials, got %v", noAccount)
	}
	if wrongPass.Error() != noAccount.Error() {
		t.Fatalf("failure causes leak: %q vs %q", wrongPass, noAccount)
	}
}

func TestAuthService_Validate_EmptyInput(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, err := svc.Validate(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty username: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Validate(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_IssuesTokenAndAudits(t *testing.T) {
	svc, _, audit := newAuthFixture()
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "s3cretpass", Role: domain.RoleAgente,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "s3cretpass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token != "tok" {
		t.Fatalf("expected issued token, got %q", result.Token)
	}
	if result.User.Role != domain.RoleAgente {
		t.Fatalf("expected role agente, got %s", result.User.Role)
	}

	if len(audit.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(audit.events))
	}
	if audit.events[0].Outcome != ports.AuditOutcomeOK {
		t.Fatalf("expected ok outcome, got %s", audit.events[0].Outcome)
	}
}

func TestAuthService_Login_DeniedIsAudited(t *testing.T) {
	svc, _, audit := newAuthFixture()

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if len(audit.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(audit.events))
	}
	event := audit.events[0]
	if event.Outcome != ports.AuditOutcomeDenied || event.Reason != "invalid_credentials" {
		t.Fatalf("unexpected audit event: %+v", event)
	}
}
