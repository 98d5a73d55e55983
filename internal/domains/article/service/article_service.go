package service

import (
	"context"

	"github.com/google/uuid"

	"pressroom-backend/internal/domains/article"
	"pressroom-backend/internal/domains/author"
)

type articleService struct {
	repo    article.Repository
	authors author.Repository
}

func NewArticleService(repo article.Repository, authors author.Repository) article.Service {
	return &articleService{repo: repo, authors: authors}
}

// resolveAuthorID decides who the article belongs to. The authenticated
// identity wins; the payload's authorId only fills in for anonymous callers
// and must otherwise agree with the token.
func resolveAuthorID(payloadAuthorID string, authenticated *uuid.UUID) (uuid.UUID, error) {
	if authenticated == nil {
		if payloadAuthorID == "" {
			return uuid.Nil, article.ErrAuthorRequired
		}
		id, err := uuid.Parse(payloadAuthorID)
		if err != nil {
			// The DTO already format-checked this; keep the guard anyway.
			return uuid.Nil, article.ErrAuthorRequired
		}
		return id, nil
	}

	if payloadAuthorID != "" && payloadAuthorID != authenticated.String() {
		return uuid.Nil, article.ErrAuthorMismatch
	}

	return *authenticated, nil
}

func (s *articleService) Create(ctx context.Context, req article.CreateArticleRequest, authorID *uuid.UUID) (*article.WithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	owner, err := resolveAuthorID(req.AuthorID, authorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.authors.ExistsByID(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, article.ErrAuthorNotFound
	}

	return s.repo.Create(ctx, &article.Article{
		Title:    req.Title,
		Body:     req.Body,
		Tags:     req.Tags.Normalize(),
		Status:   article.StatusDraft,
		AuthorID: owner,
	})
}

// ensureOwnership loads the owner and compares it to the caller. The
// subsequent write re-checks the owner in its WHERE clause, so this is only
// responsible for picking 404 vs 403.
func (s *articleService) ensureOwnership(ctx context.Context, id, authorID uuid.UUID) error {
	ownerID, err := s.repo.FindOwnerID(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != authorID {
		return article.ErrNotOwner
	}
	return nil
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req article.UpdateArticleRequest, authorID uuid.UUID) (*article.WithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureOwnership(ctx, id, authorID); err != nil {
		return nil, err
	}

	fields := article.UpdateFields{Title: req.Title, Body: req.Body}
	if req.Tags != nil {
		tags := req.Tags.Normalize()
		fields.Tags = &tags
	}

	return s.repo.Update(ctx, id, authorID, fields)
}

func (s *articleService) Publish(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*article.WithAuthor, error) {
	if err := s.ensureOwnership(ctx, id, authorID); err != nil {
		return nil, err
	}

	return s.repo.SetStatus(ctx, id, authorID, article.StatusPublished)
}

func (s *articleService) Unpublish(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*article.WithAuthor, error) {
	if err := s.ensureOwnership(ctx, id, authorID); err != nil {
		return nil, err
	}

	return s.repo.SetStatus(ctx, id, authorID, article.StatusDraft)
}

func (s *articleService) ListPublished(ctx context.Context, q article.ListPublishedQuery) ([]article.WithAuthor, error) {
	return s.repo.ListPublished(ctx, q)
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*article.WithAuthor, error) {
	return s.repo.FindByID(ctx, id)
}
