package test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ngoportal/internal/models"
	"ngoportal/internal/repository"
)

type MockResourceStore[T any] struct {
	mock.Mock
}

func (m *MockResourceStore[T]) List(ctx context.Context, filter *repository.Filter, limit, offset int) ([]T, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockResourceStore[T]) GetByID(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceStore[T]) Create(ctx context.Context, arg any) (*T, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceStore[T]) Update(ctx context.Context, id int, changes map[string]any) (*T, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceStore[T]) Delete(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

type MockDonationStore struct {
	MockResourceStore[models.Donation]
}

func (m *MockDonationStore) Verify(ctx context.Context, id int) (*models.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.Identity, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.Identity), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, cookieValue string) error {
	args := m.Called(ctx, cookieValue)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, cookieValue string) (*models.Identity, error) {
	args := m.Called(ctx, cookieValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockAuthService) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, req models.CreateUser) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id, callerID int) (*models.User, error) {
	args := m.Called(ctx, id, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
