package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom-backend/internal/domains/article"
	"pressroom-backend/internal/domains/author"
)

type mockArticleRepository struct {
	createFn        func(ctx context.Context, a *article.Article) (*article.WithAuthor, error)
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*article.WithAuthor, error)
	findOwnerIDFn   func(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	updateFn        func(ctx context.Context, id, ownerID uuid.UUID, fields article.UpdateFields) (*article.WithAuthor, error)
	setStatusFn     func(ctx context.Context, id, ownerID uuid.UUID, status article.Status) (*article.WithAuthor, error)
	listPublishedFn func(ctx context.Context, q article.ListPublishedQuery) ([]article.WithAuthor, error)
}

func (m *mockArticleRepository) Create(ctx context.Context, a *article.Article) (*article.WithAuthor, error) {
	return m.createFn(ctx, a)
}

func (m *mockArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*article.WithAuthor, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockArticleRepository) FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	return m.findOwnerIDFn(ctx, id)
}

func (m *mockArticleRepository) Update(ctx context.Context, id, ownerID uuid.UUID, fields article.UpdateFields) (*article.WithAuthor, error) {
	return m.updateFn(ctx, id, ownerID, fields)
}

func (m *mockArticleRepository) SetStatus(ctx context.Context, id, ownerID uuid.UUID, status article.Status) (*article.WithAuthor, error) {
	return m.setStatusFn(ctx, id, ownerID, status)
}

func (m *mockArticleRepository) ListPublished(ctx context.Context, q article.ListPublishedQuery) ([]article.WithAuthor, error) {
	return m.listPublishedFn(ctx, q)
}

type mockAuthorRepository struct {
	existsByIDFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockAuthorRepository) Create(context.Context, *author.Author) (*author.Author, error) {
	panic("not expected")
}

func (m *mockAuthorRepository) FindByID(context.Context, uuid.UUID) (*author.Author, error) {
	panic("not expected")
}

func (m *mockAuthorRepository) FindByName(context.Context, string) (*author.Author, error) {
	panic("not expected")
}

func (m *mockAuthorRepository) FindByNameInsensitive(context.Context, string) (*author.Author, error) {
	panic("not expected")
}

func (m *mockAuthorRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsByIDFn(ctx, id)
}

func authorExists(exists bool) *mockAuthorRepository {
	return &mockAuthorRepository{
		existsByIDFn: func(context.Context, uuid.UUID) (bool, error) {
			return exists, nil
		},
	}
}

func echoCreate(captured **article.Article) *mockArticleRepository {
	return &mockArticleRepository{
		createFn: func(_ context.Context, a *article.Article) (*article.WithAuthor, error) {
			*captured = a
			return &article.WithAuthor{Article: *a}, nil
		},
	}
}

func TestCreate(t *testing.T) {
	callerID := uuid.New()

	t.Run("authenticated caller becomes the owner", func(t *testing.T) {
		var created *article.Article
		svc := NewArticleService(echoCreate(&created), authorExists(true))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Title: "First post",
			Body:  "Hello",
		}, &callerID)
		require.NoError(t, err)

		assert.Equal(t, callerID, created.AuthorID)
		assert.Equal(t, article.StatusDraft, created.Status)
		assert.Equal(t, []string{}, created.Tags)
	})

	t.Run("tags are normalized before persisting", func(t *testing.T) {
		var created *article.Article
		svc := NewArticleService(echoCreate(&created), authorExists(true))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Title: "First post",
			Body:  "Hello",
			Tags:  article.NewTagList(" go ", "go", "", "  web  "),
		}, &callerID)
		require.NoError(t, err)

		// Trimmed and empties dropped, duplicates kept.
		assert.Equal(t, []string{"go", "go", "web"}, created.Tags)
	})

	t.Run("matching body authorId is accepted", func(t *testing.T) {
		var created *article.Article
		svc := NewArticleService(echoCreate(&created), authorExists(true))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Title:    "First post",
			Body:     "Hello",
			AuthorID: callerID.String(),
		}, &callerID)
		require.NoError(t, err)
		assert.Equal(t, callerID, created.AuthorID)
	})

	t.Run("mismatched body authorId is forbidden", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepository{}, authorExists(true))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Title:    "First post",
			Body:     "Hello",
			AuthorID: uuid.NewString(),
		}, &callerID)
		assert.ErrorIs(t, err, article.ErrAuthorMismatch)
	})

	t.Run("anonymous caller uses body authorId", func(t *testing.T) {
		bodyAuthor := uuid.New()
		var created *article.Article
		svc := NewArticleService(echoCreate(&created), authorExists(true))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Title:    "First post",
			Body:     "Hello",
			AuthorID: bodyAuthor.String(),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, bodyAuthor, created.AuthorID)
	})

	t.Run("anonymous caller without authorId is rejected", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepository{}, authorExists(true))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Title: "First post",
			Body:  "Hello",
		}, nil)
		assert.ErrorIs(t, err, article.ErrAuthorRequired)
	})

	t.Run("unknown author is a 404", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepository{}, authorExists(false))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Title: "First post",
			Body:  "Hello",
		}, &callerID)
		assert.ErrorIs(t, err, article.ErrAuthorNotFound)
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepository{}, authorExists(true))

		_, err := svc.Create(context.Background(), article.CreateArticleRequest{
			Body: "Hello",
		}, &callerID)
		require.Error(t, err)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs, "title")
	})
}

func TestUpdate(t *testing.T) {
	articleID := uuid.New()
	ownerID := uuid.New()
	title := "Updated title"

	t.Run("owner updates only the provided fields", func(t *testing.T) {
		var gotFields article.UpdateFields
		repo := &mockArticleRepository{
			findOwnerIDFn: func(context.Context, uuid.UUID) (uuid.UUID, error) {
				return ownerID, nil
			},
			updateFn: func(_ context.Context, id, owner uuid.UUID, fields article.UpdateFields) (*article.WithAuthor, error) {
				assert.Equal(t, articleID, id)
				assert.Equal(t, ownerID, owner)
				gotFields = fields
				return &article.WithAuthor{}, nil
			},
		}
		svc := NewArticleService(repo, authorExists(true))

		_, err := svc.Update(context.Background(), articleID, article.UpdateArticleRequest{
			Title: &title,
			Tags:  article.NewTagList("go", " web "),
		}, ownerID)
		require.NoError(t, err)

		require.NotNil(t, gotFields.Title)
		assert.Equal(t, title, *gotFields.Title)
		assert.Nil(t, gotFields.Body)
		require.NotNil(t, gotFields.Tags)
		assert.Equal(t, []string{"go", "web"}, *gotFields.Tags)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		repo := &mockArticleRepository{
			findOwnerIDFn: func(context.Context, uuid.UUID) (uuid.UUID, error) {
				return ownerID, nil
			},
		}
		svc := NewArticleService(repo, authorExists(true))

		_, err := svc.Update(context.Background(), articleID, article.UpdateArticleRequest{
			Title: &title,
		}, uuid.New())
		assert.ErrorIs(t, err, article.ErrNotOwner)
	})

	t.Run("missing article is a 404", func(t *testing.T) {
		repo := &mockArticleRepository{
			findOwnerIDFn: func(context.Context, uuid.UUID) (uuid.UUID, error) {
				return uuid.Nil, article.ErrNotFound
			},
		}
		svc := NewArticleService(repo, authorExists(true))

		_, err := svc.Update(context.Background(), articleID, article.UpdateArticleRequest{
			Title: &title,
		}, ownerID)
		assert.ErrorIs(t, err, article.ErrNotFound)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepository{}, authorExists(true))

		_, err := svc.Update(context.Background(), articleID, article.UpdateArticleRequest{}, ownerID)
		require.Error(t, err)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs, "body")
	})
}

func TestPublishAndUnpublish(t *testing.T) {
	articleID := uuid.New()
	ownerID := uuid.New()

	newRepo := func(gotStatus *article.Status) *mockArticleRepository {
		return &mockArticleRepository{
			findOwnerIDFn: func(context.Context, uuid.UUID) (uuid.UUID, error) {
				return ownerID, nil
			},
			setStatusFn: func(_ context.Context, id, owner uuid.UUID, status article.Status) (*article.WithAuthor, error) {
				assert.Equal(t, articleID, id)
				assert.Equal(t, ownerID, owner)
				*gotStatus = status
				return &article.WithAuthor{}, nil
			},
		}
	}

	t.Run("publish", func(t *testing.T) {
		var got article.Status
		svc := NewArticleService(newRepo(&got), authorExists(true))

		_, err := svc.Publish(context.Background(), articleID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, article.StatusPublished, got)
	})

	t.Run("unpublish", func(t *testing.T) {
		var got article.Status
		svc := NewArticleService(newRepo(&got), authorExists(true))

		_, err := svc.Unpublish(context.Background(), articleID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, article.StatusDraft, got)
	})

	t.Run("publish by non-owner is forbidden", func(t *testing.T) {
		var got article.Status
		svc := NewArticleService(newRepo(&got), authorExists(true))

		_, err := svc.Publish(context.Background(), articleID, uuid.New())
		assert.ErrorIs(t, err, article.ErrNotOwner)
	})
}

func TestListPublished(t *testing.T) {
	tagFilter := "go"
	authorFilter := uuid.New()

	repo := &mockArticleRepository{
		listPublishedFn: func(_ context.Context, q article.ListPublishedQuery) ([]article.WithAuthor, error) {
			assert.Equal(t, tagFilter, q.Tag)
			require.NotNil(t, q.AuthorID)
			assert.Equal(t, authorFilter, *q.AuthorID)
			assert.Equal(t, 10, q.Limit)
			assert.Equal(t, 20, q.Offset)
			return []article.WithAuthor{}, nil
		},
	}
	svc := NewArticleService(repo, authorExists(true))

	result, err := svc.ListPublished(context.Background(), article.ListPublishedQuery{
		Tag:      tagFilter,
		AuthorID: &authorFilter,
		Limit:    10,
		Offset:   20,
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestGetByID(t *testing.T) {
	articleID := uuid.New()
	now := time.Now()

	repo := &mockArticleRepository{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*article.WithAuthor, error) {
			assert.Equal(t, articleID, id)
			return &article.WithAuthor{
				Article: article.Article{ID: articleID, Status: article.StatusDraft, CreatedAt: now},
			}, nil
		},
	}
	svc := NewArticleService(repo, authorExists(true))

	got, err := svc.GetByID(context.Background(), articleID)
	require.NoError(t, err)
	assert.Equal(t, articleID, got.ID)
	assert.Equal(t, article.StatusDraft, got.Status)
}
