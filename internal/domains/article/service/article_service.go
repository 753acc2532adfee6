package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news-backend/internal/domains/article"
	"news-backend/internal/shared"
	"news-backend/pkg/cache"
	"news-backend/pkg/logger"
)

const (
	activeArticlesCacheKey = "articles:active"
	activeArticlesCacheTTL = 5 * time.Minute
)

type articleService struct {
	repo  article.Repository
	cache cache.Cache
}

func NewArticleService(repo article.Repository, cache cache.Cache) article.Service {
	return &articleService{
		repo:  repo,
		cache: cache,
	}
}

// canModify consolidates the ownership gate: admins may touch any
// article, everyone else only their own.
func canModify(a *article.Article, callerID int16, role int) bool {
	return role == shared.RoleAdmin || a.CreatedByID == callerID
}

// ========================= READ =====================

func (s *articleService) GetByID(ctx context.Context, id string, callerID int16, role int) (*article.ArticleResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !a.IsPublished() && !canModify(a, callerID, role) {
		return nil, article.ErrArticleNotPublic
	}

	resp := a.ToResponse()
	return &resp, nil
}

func (s *articleService) ListActive(ctx context.Context) ([]article.ArticleSummary, error) {
	var cached []article.ArticleSummary
	if hit, err := s.cache.Get(ctx, activeArticlesCacheKey, &cached); err != nil {
		logger.Warn("active articles cache read failed", map[string]interface{}{"error": err.Error()})
	} else if hit {
		return cached, nil
	}

	published := true
	articles, err := s.repo.Search(ctx, article.SearchFilter{Status: &published})
	if err != nil {
		return nil, err
	}

	summaries := article.ToSummaries(articles)

	if err := s.cache.Set(ctx, activeArticlesCacheKey, summaries, activeArticlesCacheTTL); err != nil {
		logger.Warn("active articles cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return summaries, nil
}

func (s *articleService) Search(ctx context.Context, filter article.SearchFilter) ([]article.ArticleSummary, error) {
	articles, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return article.ToSummaries(articles), nil
}

func (s *articleService) ListMine(ctx context.Context, authorID int16) ([]article.ArticleSummary, error) {
	articles, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return article.ToSummaries(articles), nil
}

func (s *articleService) ListByCategory(ctx context.Context, categoryID int16) ([]article.ArticleSummary, error) {
	articles, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return article.ToSummaries(articles), nil
}

// ========================= WRITE =====================

func (s *articleService) Create(ctx context.Context, req article.CreateArticleRequest, callerID int16) (*article.ArticleResponse, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &article.Article{
		ID:          article.GenerateID(now),
		Title:       req.Title,
		Headline:    req.Headline,
		Content:     req.Content,
		Source:      req.Source,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
		CreatedAt:   now,
		CreatedByID: callerID,
	}

	if err := s.repo.CreateWithTags(ctx, a, req.TagIDs); err != nil {
		return nil, err
	}

	s.invalidateActive(ctx)

	return s.reload(ctx, a.ID)
}

func (s *articleService) Update(ctx context.Context, id string, req article.UpdateArticleRequest, callerID int16, role int) (*article.ArticleResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canModify(existing, callerID, role) {
		return nil, article.ErrNotOwner
	}

	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &article.Article{
		ID:          id,
		Title:       req.Title,
		Headline:    req.Headline,
		Content:     req.Content,
		Source:      req.Source,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
		ModifiedAt:  &now,
		UpdatedByID: &callerID,
	}

	if err := s.repo.UpdateWithTags(ctx, a, req.TagIDs); err != nil {
		return nil, err
	}

	s.invalidateActive(ctx)

	return s.reload(ctx, id)
}

func (s *articleService) Delete(ctx context.Context, id string, callerID int16, role int) (bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, article.ErrArticleNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !canModify(existing, callerID, role) {
		return false, article.ErrNotOwner
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.invalidateActive(ctx)
	}

	return deleted, nil
}

func (s *articleService) Duplicate(ctx context.Context, id string, callerID int16) (*article.ArticleResponse, error) {
	src, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The copy always starts unpublished, whatever the source status
	unpublished := false
	now := time.Now()
	copy := &article.Article{
		ID:          article.GenerateID(now),
		Title:       "Copy of " + src.Title,
		Headline:    src.Headline,
		Content:     src.Content,
		Source:      src.Source,
		CategoryID:  src.CategoryID,
		Status:      &unpublished,
		CreatedAt:   now,
		CreatedByID: callerID,
	}

	if err := s.repo.CreateWithTags(ctx, copy, src.TagIDs()); err != nil {
		return nil, err
	}

	return s.reload(ctx, copy.ID)
}

// ========================= RELATED =====================

// FindRelated fills the feed in two stages. Same-category results come
// first; when they fall short and the target carries tags, articles
// sharing a tag top the list up. The stages are concatenated as-is, an
// article matching both ways appears twice.
func (s *articleService) FindRelated(ctx context.Context, id string, limit int) ([]article.ArticleSummary, error) {
	if limit <= 0 {
		return []article.ArticleSummary{}, nil
	}

	target, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, article.ErrArticleNotFound) {
		return []article.ArticleSummary{}, nil
	}
	if err != nil {
		return nil, err
	}

	related, err := s.repo.FindPublishedByCategory(ctx, target.CategoryID, id, limit)
	if err != nil {
		return nil, err
	}

	deficit := limit - len(related)
	if deficit > 0 {
		if tagIDs := target.TagIDs(); len(tagIDs) > 0 {
			byTags, err := s.repo.FindPublishedByTags(ctx, tagIDs, id, deficit)
			if err != nil {
				return nil, err
			}
			related = append(related, byTags...)
		}
	}

	return article.ToSummaries(related), nil
}

// ========================= HELPERS =====================

func (s *articleService) checkCategory(ctx context.Context, categoryID *int16) error {
	if categoryID == nil {
		return nil
	}

	exists, err := s.repo.CategoryExists(ctx, *categoryID)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return article.ErrCategoryNotFound
	}

	return nil
}

// reload re-reads the stored article so the response carries the
// hydrated names and the tag set the database actually kept.
func (s *articleService) reload(ctx context.Context, id string) (*article.ArticleResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := a.ToResponse()
	return &resp, nil
}

func (s *articleService) invalidateActive(ctx context.Context) {
	if err := s.cache.Delete(ctx, activeArticlesCacheKey); err != nil {
		logger.Warn("active articles cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
