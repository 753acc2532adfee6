package service

import (
	"context"
	"fmt"

	"news-backend/internal/domains/category"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]category.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) Search(ctx context.Context, term string) ([]category.Category, error) {
	return s.repo.Search(ctx, term)
}

func (s *categoryService) GetByID(ctx context.Context, id int16) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	if err := s.checkName(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	if err := s.checkParent(ctx, req.ParentID, 0); err != nil {
		return nil, err
	}

	c := &category.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return created, nil
}

func (s *categoryService) Update(ctx context.Context, id int16, req category.UpdateCategoryRequest) (*category.Category, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkName(ctx, req.Name, id); err != nil {
		return nil, err
	}

	if parentChanged(existing.ParentID, req.ParentID) {
		used, err := s.repo.IsCategoryUsed(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check category usage: %w", err)
		}
		if used {
			return nil, category.ErrParentChangeInUse
		}

		if err := s.checkParent(ctx, req.ParentID, id); err != nil {
			return nil, err
		}
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.ParentID = req.ParentID
	existing.IsActive = req.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	return existing, nil
}

func (s *categoryService) Delete(ctx context.Context, id int16) error {
	used, err := s.repo.IsCategoryUsed(ctx, id)
	if err != nil {
		return fmt.Errorf("check category usage: %w", err)
	}
	if used {
		return category.ErrCategoryInUse
	}

	hasChildren, err := s.repo.HasChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("check child categories: %w", err)
	}
	if hasChildren {
		return category.ErrCategoryInUse
	}

	return s.repo.Delete(ctx, id)
}

func (s *categoryService) checkName(ctx context.Context, name string, excludeID int16) error {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return category.ErrDuplicateName
	}
	return nil
}

func (s *categoryService) checkParent(ctx context.Context, parentID *int16, selfID int16) error {
	if parentID == nil {
		return nil
	}

	if selfID != 0 && *parentID == selfID {
		return category.ErrSelfParent
	}

	exists, err := s.repo.Exists(ctx, *parentID)
	if err != nil {
		return fmt.Errorf("check parent category: %w", err)
	}
	if !exists {
		return category.ErrParentNotFound
	}

	return nil
}

func parentChanged(old, new *int16) bool {
	if old == nil && new == nil {
		return false
	}
	if old == nil || new == nil {
		return true
	}
	return *old != *new
}
