package service

import (
	"context"

	"ngoportal/internal/models"
	"ngoportal/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req models.CreateUser) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int) (*models.User, error)
	Delete(ctx context.Context, id, callerID int) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, req models.CreateUser) (*models.User, error) {
	return s.userRepo.Create(ctx, req.Username, req.Password, req.Role)
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Delete refuses to remove the caller's own account. The check happens
// before the query, so a rejected self-deletion leaves the row untouched.
func (s *userService) Delete(ctx context.Context, id, callerID int) (*models.User, error) {
	if id == callerID {
		return nil, ErrSelfDeletion
	}

	return s.userRepo.Delete(ctx, id)
}
