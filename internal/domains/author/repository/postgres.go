package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pressroom-backend/internal/domains/author"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, password_hash)
        VALUES ($1, $2)
        RETURNING id, name, password_hash, created_at
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.PasswordHash).Scan(
		&created.ID,
		&created.Name,
		&created.PasswordHash,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, author.ErrNameTaken
		}
		return nil, fmt.Errorf("create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT id, name, password_hash, created_at
        FROM authors
        WHERE id = $1
    `

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	query := `
        SELECT id, name, password_hash, created_at
        FROM authors
        WHERE name = $1
    `

	return r.scanOne(r.pool.QueryRow(ctx, query, name))
}

func (r *postgresRepository) FindByNameInsensitive(ctx context.Context, name string) (*author.Author, error) {
	query := `
        SELECT id, name, password_hash, created_at
        FROM authors
        WHERE LOWER(name) = LOWER($1)
        LIMIT 1
    `

	return r.scanOne(r.pool.QueryRow(ctx, query, name))
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("author exists: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) scanOne(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(&a.ID, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	return &a, nil
}
