package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/resumehub/resume-api/internal/api/metrics"
	"github.com/resumehub/resume-api/internal/core/domain"
	"github.com/resumehub/resume-api/internal/core/ports"
)

// AuthService implements signup and login on top of the credential store, the
// password hasher and the token service.
type AuthService struct {
	repo   ports.CredentialRepository
	hasher *PasswordHasher
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.CredentialRepository, hasher *PasswordHasher, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Signup hashes the password and inserts the user. A duplicate username
// surfaces as domain.ErrUserExists regardless of the password supplied.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("username", username).Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

// Login checks the credentials and mints a bearer token for the username.
// An unknown username and a wrong password both return
// domain.ErrInvalidCredentials, so callers cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", username).Msg("login succeeded")
	return token, nil
}
