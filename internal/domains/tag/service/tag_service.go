package service

import (
	"context"
	"fmt"

	"news-backend/internal/domains/tag"
)

type tagService struct {
	repo tag.Repository
}

func NewTagService(repo tag.Repository) tag.Service {
	return &tagService{repo: repo}
}

func (s *tagService) GetAll(ctx context.Context) ([]tag.Tag, error) {
	return s.repo.GetAll(ctx)
}

func (s *tagService) GetByID(ctx context.Context, id int) (*tag.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tagService) Search(ctx context.Context, term string) ([]tag.Tag, error) {
	return s.repo.Search(ctx, term)
}

func (s *tagService) Create(ctx context.Context, req tag.CreateTagRequest) (*tag.Tag, error) {
	exists, err := s.repo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("check tag name: %w", err)
	}
	if exists {
		return nil, tag.ErrDuplicateTagName
	}

	created, err := s.repo.Create(ctx, req.Name, req.Note)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	return created, nil
}

func (s *tagService) Update(ctx context.Context, id int, req tag.UpdateTagRequest) (*tag.Tag, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != existing.Name {
		exists, err := s.repo.ExistsByName(ctx, *req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("check tag name: %w", err)
		}
		if exists {
			return nil, tag.ErrDuplicateTagName
		}
		existing.Name = *req.Name
	}

	if req.Note != nil {
		existing.Note = req.Note
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}

	return existing, nil
}

func (s *tagService) Delete(ctx context.Context, id int) error {
	used, err := s.repo.IsTagUsed(ctx, id)
	if err != nil {
		return fmt.Errorf("check tag usage: %w", err)
	}
	if used {
		return tag.ErrTagInUse
	}

	return s.repo.Delete(ctx, id)
}
