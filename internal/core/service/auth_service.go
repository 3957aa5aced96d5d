package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

// AuthService implements registration, credential validation and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, audit: audit, log: log}
}

// Register creates a new account with a bcrypt-hashed password. The role
// must belong to the closed role set; the anonymous registration endpoint
// only ever passes cliente, other roles arrive via the admin user flow.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Role.Valid() {
		return nil, domain.ErrUnknownRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Validate checks a username/password pair against stored credentials.
// A missing account and a wrong password return the same
// domain.ErrInvalidCredentials so callers cannot tell which check failed.
func (s *AuthService) Validate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login validates credentials and mints a bearer token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	now := time.Now().UTC()

	user, err := s.Validate(ctx, username, password)
	if err != nil {
		s.audit.Enqueue(ports.AuditEvent{
			Username: username,
			Action:   "login",
			Outcome:  ports.AuditOutcomeDenied,
			Reason:   "invalid_credentials",
			At:       now,
		})
		return nil, err
	}

	token, err := s.tokens.Issue(user, now)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("token issuance failed")
		return nil, err
	}

	s.audit.Enqueue(ports.AuditEvent{
		SubjectID: user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Action:    "login",
		Outcome:   ports.AuditOutcomeOK,
		At:        now,
	})
	s.log.Info().Int64("subject_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: token, User: user}, nil
}
