package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pressroom-backend/internal/domains/author"
	"pressroom-backend/internal/shared/apperr"
	"pressroom-backend/pkg/jwt"
)

// bcryptCost is deliberately slow to resist offline brute-force.
const bcryptCost = 12

type authorService struct {
	repo   author.Repository
	tokens *jwt.Manager
}

func NewAuthorService(repo author.Repository, tokens *jwt.Manager) author.Service {
	return &authorService{repo: repo, tokens: tokens}
}

func (s *authorService) Register(ctx context.Context, req author.RegisterRequest) (*author.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}

	// No pre-check on the name; the unique constraint is the arbiter and the
	// repository translates its violation to ErrNameTaken.
	created, err := s.repo.Create(ctx, &author.Author{
		Name:         req.Name,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Name)
	if err != nil {
		return nil, apperr.Internal("issue token", err)
	}

	return &author.AuthResponse{Author: created.ToResponse(), Token: token}, nil
}

func (s *authorService) Login(ctx context.Context, req author.LoginRequest) (*author.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return nil, author.ErrInvalidCredentials
		}
		return nil, err
	}

	// Accounts without a stored hash cannot log in. Same message as every
	// other failure here.
	if a.PasswordHash == "" {
		return nil, author.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, author.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(a.ID, a.Name)
	if err != nil {
		return nil, apperr.Internal("issue token", err)
	}

	return &author.AuthResponse{Author: a.ToResponse(), Token: token}, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.AuthorResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := a.ToResponse()
	return &resp, nil
}

func (s *authorService) GetByName(ctx context.Context, name string) (*author.AuthorResponse, error) {
	a, err := s.repo.FindByNameInsensitive(ctx, name)
	if err != nil {
		return nil, err
	}

	resp := a.ToResponse()
	return &resp, nil
}
