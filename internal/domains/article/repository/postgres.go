package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pressroom-backend/internal/domains/article"
)

// joinedColumns is the projection every read returns: the article row (under
// the given alias) plus the owning author's public fields.
func joinedColumns(alias string) string {
	return fmt.Sprintf(`
        %[1]s.id, %[1]s.title, %[1]s.body, %[1]s.tags, %[1]s.status, %[1]s.published_at,
        %[1]s.author_id, %[1]s.created_at, %[1]s.updated_at,
        au.id, au.name, au.created_at`, alias)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *article.Article) (*article.WithAuthor, error) {
	query := `
        WITH inserted AS (
            INSERT INTO articles (title, body, tags, status, author_id)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING *
        )
        SELECT ` + joinedColumns("i") + `
        FROM inserted i
        JOIN authors au ON au.id = i.author_id
    `

	row := r.pool.QueryRow(ctx, query, a.Title, a.Body, a.Tags, a.Status, a.AuthorID)
	created, err := scanWithAuthor(row)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*article.WithAuthor, error) {
	query := `
        SELECT ` + joinedColumns("a") + `
        FROM articles a
        JOIN authors au ON au.id = a.author_id
        WHERE a.id = $1
    `

	found, err := scanWithAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	return found, nil
}

func (r *postgresRepository) FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := `SELECT author_id FROM articles WHERE id = $1`

	var ownerID uuid.UUID
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, article.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("find article owner: %w", err)
	}

	return ownerID, nil
}

func (r *postgresRepository) Update(ctx context.Context, id, ownerID uuid.UUID, fields article.UpdateFields) (*article.WithAuthor, error) {
	// COALESCE keeps columns for nil fields; the owner condition makes the
	// write a no-op for anyone but the owner, closing the window between
	// the service's ownership check and this statement.
	query := `
        WITH updated AS (
            UPDATE articles
            SET title      = COALESCE($3::text, title),
                body       = COALESCE($4::text, body),
                tags       = COALESCE($5::text[], tags),
                updated_at = now()
            WHERE id = $1 AND author_id = $2
            RETURNING *
        )
        SELECT ` + joinedColumns("u") + `
        FROM updated u
        JOIN authors au ON au.id = u.author_id
    `

	row := r.pool.QueryRow(ctx, query, id, ownerID, fields.Title, fields.Body, fields.Tags)
	updated, err := scanWithAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) SetStatus(ctx context.Context, id, ownerID uuid.UUID, status article.Status) (*article.WithAuthor, error) {
	query := `
        WITH updated AS (
            UPDATE articles
            SET status       = $3,
                published_at = CASE WHEN $3 = 'published' THEN now() ELSE NULL END,
                updated_at   = now()
            WHERE id = $1 AND author_id = $2
            RETURNING *
        )
        SELECT ` + joinedColumns("u") + `
        FROM updated u
        JOIN authors au ON au.id = u.author_id
    `

	row := r.pool.QueryRow(ctx, query, id, ownerID, status)
	updated, err := scanWithAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("set article status: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context, q article.ListPublishedQuery) ([]article.WithAuthor, error) {
	conditions := []string{"a.status = 'published'"}
	args := []any{}

	if q.Tag != "" {
		args = append(args, q.Tag)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(a.tags)", len(args)))
	}
	if q.AuthorID != nil {
		args = append(args, *q.AuthorID)
		conditions = append(conditions, fmt.Sprintf("a.author_id = $%d", len(args)))
	}

	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(`
        SELECT %s
        FROM articles a
        JOIN authors au ON au.id = a.author_id
        WHERE %s
        ORDER BY a.created_at DESC
        LIMIT $%d OFFSET $%d
    `, joinedColumns("a"), strings.Join(conditions, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	articles := make([]article.WithAuthor, 0)
	for rows.Next() {
		a, err := scanWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan published article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	return articles, nil
}

func scanWithAuthor(row pgx.Row) (*article.WithAuthor, error) {
	var a article.WithAuthor
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Body,
		&a.Tags,
		&a.Status,
		&a.PublishedAt,
		&a.AuthorID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Author.ID,
		&a.Author.Name,
		&a.Author.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}
