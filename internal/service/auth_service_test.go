package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ngoportal/internal/config"
	"ngoportal/internal/models"
	"ngoportal/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, username, password, role string) (*models.User, error) {
	args := m.Called(ctx, username, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int, ttl time.Duration) (*models.Session, error) {
	args := m.Called(ctx, userID, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *mockSessionRepo) GetUser(ctx context.Context, sessionID string) (*models.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockSessionRepo) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newAuthService(userRepo *mockUserRepo, sessionRepo *mockSessionRepo) AuthService {
	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionTTL:    30 * 24 * time.Hour,
	}
	return NewAuthService(userRepo, sessionRepo, cfg)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login returns identity and signed cookie", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		sessionRepo := new(mockSessionRepo)
		svc := newAuthService(userRepo, sessionRepo)

		user := &models.User{ID: 1, Username: "admin", PasswordHash: "$2a$10$hash", Role: "admin"}
		session := &models.Session{SessionID: "sid-1", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}

		userRepo.On("VerifyPassword", ctx, "admin", "secret123").Return(user, nil)
		sessionRepo.On("Create", ctx, 1, 30*24*time.Hour).Return(session, nil)

		identity, cookieValue, err := svc.Login(ctx, "admin", "secret123")

		require.NoError(t, err)
		assert.Equal(t, 1, identity.ID)
		assert.Equal(t, "admin", identity.Username)
		assert.True(t, strings.HasPrefix(cookieValue, "sid-1."))
		userRepo.AssertExpectations(t)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("wrong password propagates ErrInvalidCredentials", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		sessionRepo := new(mockSessionRepo)
		svc := newAuthService(userRepo, sessionRepo)

		userRepo.On("VerifyPassword", ctx, "admin", "wrong").Return(nil, repository.ErrInvalidCredentials)

		_, _, err := svc.Login(ctx, "admin", "wrong")

		assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
		sessionRepo.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip through sign and verify", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		sessionRepo := new(mockSessionRepo)
		svc := newAuthService(userRepo, sessionRepo)

		user := &models.User{ID: 1, Username: "admin", Role: "admin"}
		session := &models.Session{SessionID: "sid-1", UserID: 1}

		userRepo.On("VerifyPassword", ctx, "admin", "secret123").Return(user, nil)
		sessionRepo.On("Create", ctx, 1, mock.Anything).Return(session, nil)
		sessionRepo.On("GetUser", ctx, "sid-1").Return(user, nil)

		_, cookieValue, err := svc.Login(ctx, "admin", "secret123")
		require.NoError(t, err)

		identity, err := svc.CurrentUser(ctx, cookieValue)

		require.NoError(t, err)
		assert.Equal(t, "admin", identity.Username)
	})

	t.Run("forged signature is ErrUnauthenticated without a store lookup", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		sessionRepo := new(mockSessionRepo)
		svc := newAuthService(userRepo, sessionRepo)

		_, err := svc.CurrentUser(ctx, "sid-1.Zm9yZ2Vk")

		assert.ErrorIs(t, err, ErrUnauthenticated)
		sessionRepo.AssertNotCalled(t, "GetUser")
	})

	t.Run("malformed cookie is ErrUnauthenticated", func(t *testing.T) {
		svc := newAuthService(new(mockUserRepo), new(mockSessionRepo))

		_, err := svc.CurrentUser(ctx, "no-dot-here")

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired session is ErrUnauthenticated", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		sessionRepo := new(mockSessionRepo)
		svc := newAuthService(userRepo, sessionRepo)

		user := &models.User{ID: 1, Username: "admin", Role: "admin"}
		session := &models.Session{SessionID: "sid-stale", UserID: 1}

		userRepo.On("VerifyPassword", ctx, "admin", "secret123").Return(user, nil)
		sessionRepo.On("Create", ctx, 1, mock.Anything).Return(session, nil)
		sessionRepo.On("GetUser", ctx, "sid-stale").Return(nil, repository.ErrNotFound)

		_, cookieValue, err := svc.Login(ctx, "admin", "secret123")
		require.NoError(t, err)

		_, err = svc.CurrentUser(ctx, cookieValue)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("valid cookie deletes the session", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		sessionRepo := new(mockSessionRepo)
		svc := newAuthService(userRepo, sessionRepo)

		user := &models.User{ID: 1, Username: "admin", Role: "admin"}
		session := &models.Session{SessionID: "sid-1", UserID: 1}

		userRepo.On("VerifyPassword", ctx, "admin", "secret123").Return(user, nil)
		sessionRepo.On("Create", ctx, 1, mock.Anything).Return(session, nil)
		sessionRepo.On("Delete", ctx, "sid-1").Return(nil)

		_, cookieValue, err := svc.Login(ctx, "admin", "secret123")
		require.NoError(t, err)

		assert.NoError(t, svc.Logout(ctx, cookieValue))
		sessionRepo.AssertCalled(t, "Delete", ctx, "sid-1")
	})

	t.Run("garbage cookie is still a successful logout", func(t *testing.T) {
		sessionRepo := new(mockSessionRepo)
		svc := newAuthService(new(mockUserRepo), sessionRepo)

		assert.NoError(t, svc.Logout(ctx, "garbage"))
		sessionRepo.AssertNotCalled(t, "Delete")
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("self-deletion is refused before any query", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := NewUserService(userRepo)

		_, err := svc.Delete(ctx, 1, 1)

		assert.ErrorIs(t, err, ErrSelfDeletion)
		userRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("deleting another user goes through", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := NewUserService(userRepo)

		userRepo.On("Delete", ctx, 2).Return(&models.User{ID: 2, Username: "other"}, nil)

		user, err := svc.Delete(ctx, 2, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, user.ID)
	})
}
