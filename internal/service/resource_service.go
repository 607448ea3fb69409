package service

import (
	"context"

	"ngoportal/internal/models"
	"ngoportal/internal/repository"
)

// Patch is the shape of a partial update: only the fields the client sent
// end up in the column map, omitted fields keep their stored values.
type Patch interface {
	Changes() map[string]any
}

// ResourceService carries the uniform contract for one entity. T is the
// row, C the create request, U the update request. The optional prepare
// hook fills server-assigned create fields (author id, initial status).
type ResourceService[T any, C any, U Patch] struct {
	repo    repository.ResourceStore[T]
	prepare func(*C, *models.Identity)
}

func NewResourceService[T any, C any, U Patch](repo repository.ResourceStore[T], prepare func(*C, *models.Identity)) *ResourceService[T, C, U] {
	return &ResourceService[T, C, U]{repo: repo, prepare: prepare}
}

func (s *ResourceService[T, C, U]) List(ctx context.Context, filter *repository.Filter, limit, offset int) ([]T, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

func (s *ResourceService[T, C, U]) Get(ctx context.Context, id int) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ResourceService[T, C, U]) Create(ctx context.Context, req C, ident *models.Identity) (*T, error) {
	if s.prepare != nil {
		s.prepare(&req, ident)
	}
	return s.repo.Create(ctx, req)
}

func (s *ResourceService[T, C, U]) Update(ctx context.Context, id int, req U) (*T, error) {
	return s.repo.Update(ctx, id, req.Changes())
}

func (s *ResourceService[T, C, U]) Delete(ctx context.Context, id int) (*T, error) {
	return s.repo.Delete(ctx, id)
}
