package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"ngoportal/internal/config"
	"ngoportal/internal/models"
	"ngoportal/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Identity, string, error)
	Logout(ctx context.Context, cookieValue string) error
	CurrentUser(ctx context.Context, cookieValue string) (*models.Identity, error)
	TTL() time.Duration
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	secret      []byte
	ttl         time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secret:      []byte(cfg.SessionSecret),
		ttl:         cfg.SessionTTL,
	}
}

// Login verifies the password and establishes a session record. The
// returned cookie value is the session id plus an HMAC signature, so a
// cookie can be rejected without a store lookup when it was not issued
// by this server.
func (s *authService) Login(ctx context.Context, username, password string) (*models.Identity, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	session, err := s.sessionRepo.Create(ctx, user.ID, s.ttl)
	if err != nil {
		return nil, "", fmt.Errorf("failed to establish session: %w", err)
	}

	identity := &models.Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	return identity, s.sign(session.SessionID), nil
}

// Logout is idempotent: a missing, expired or unparseable cookie still
// counts as logged out.
func (s *authService) Logout(ctx context.Context, cookieValue string) error {
	sessionID, err := s.verify(cookieValue)
	if err != nil {
		return nil
	}

	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *authService) CurrentUser(ctx context.Context, cookieValue string) (*models.Identity, error) {
	sessionID, err := s.verify(cookieValue)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.sessionRepo.GetUser(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return &models.Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s *authService) TTL() time.Duration {
	return s.ttl
}

func (s *authService) sign(sessionID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(sessionID))
	return sessionID + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *authService) verify(cookieValue string) (string, error) {
	sessionID, signature, ok := strings.Cut(cookieValue, ".")
	if !ok || sessionID == "" {
		return "", errors.New("malformed session cookie")
	}

	got, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return "", errors.New("malformed session signature")
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(sessionID))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return "", errors.New("invalid session signature")
	}

	return sessionID, nil
}
