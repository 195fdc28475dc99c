package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSaveInput() SaveBlogInput {
	return SaveBlogInput{
		Title:   "A Title",
		Content: "Some content",
		Tags:    []string{"go"},
		Status:  models.BlogStatusDraft,
		UserID:  1,
	}
}

func TestBlogService_Save_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*SaveBlogInput)
	}{
		{"unknown status", func(in *SaveBlogInput) { in.Status = "archived" }},
		{"empty status", func(in *SaveBlogInput) { in.Status = "" }},
		{"missing title", func(in *SaveBlogInput) { in.Title = "" }},
		{"missing content", func(in *SaveBlogInput) { in.Content = "" }},
		{"no tags", func(in *SaveBlogInput) { in.Tags = nil }},
		{"blank tag", func(in *SaveBlogInput) { in.Tags = []string{"go", "  "} }},
		{"missing user identity", func(in *SaveBlogInput) { in.UserID = 0 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validSaveInput()
			tt.mutate(&in)
			svc := NewBlogService(noopBlogRepo(), noopUserRepo())
			_, err := svc.Save(context.Background(), in)
			assertValidationError(t, err)
		})
	}
}

func TestBlogService_Save_Create(t *testing.T) {
	t.Parallel()

	t.Run("new draft links the author in one write", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, FirstName: "Ada", Email: "ada@example.com", Password: "hash"}, nil
		}
		blogRepo := noopBlogRepo()
		var created *models.Blog
		blogRepo.createFn = func(_ context.Context, b *models.Blog) error {
			created = b
			b.ID = 10
			return nil
		}

		svc := NewBlogService(blogRepo, userRepo)
		blog, err := svc.Save(context.Background(), validSaveInput())
		require.NoError(t, err)
		require.NotNil(t, blog)
		assert.Equal(t, uint(10), blog.ID)
		assert.Equal(t, models.BlogStatusDraft, blog.Status)
		assert.Equal(t, uint(1), blog.UserID)
		assert.Empty(t, blog.User.Password, "author view must not carry the hash")

		require.NotNil(t, created)
		assert.Equal(t, uint(1), created.UserID)
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewBlogService(noopBlogRepo(), userRepo)
		_, err := svc.Save(context.Background(), validSaveInput())
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}

func TestBlogService_Save_Update(t *testing.T) {
	t.Parallel()

	existingBlog := func(ownerID uint) *models.Blog {
		return &models.Blog{
			ID:      10,
			Title:   "Old Title",
			Content: "Old content",
			Tags:    models.TagList{"misc"},
			Status:  models.BlogStatusDraft,
			UserID:  ownerID,
		}
	}

	t.Run("owner publishes their draft", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
			return existingBlog(1), nil
		}
		var updated *models.Blog
		blogRepo.updateFn = func(_ context.Context, b *models.Blog) error {
			updated = b
			return nil
		}

		in := validSaveInput()
		in.ID = 10
		in.Title = "New Title"
		in.Status = models.BlogStatusPublished

		svc := NewBlogService(blogRepo, noopUserRepo())
		blog, err := svc.Save(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "New Title", blog.Title)
		assert.True(t, blog.IsPublished())

		require.NotNil(t, updated)
		assert.Equal(t, uint(10), updated.ID)
		assert.Equal(t, models.BlogStatusPublished, updated.Status)
	})

	t.Run("published blog can go back to draft", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
			b := existingBlog(1)
			b.Status = models.BlogStatusPublished
			return b, nil
		}

		in := validSaveInput()
		in.ID = 10
		in.Status = models.BlogStatusDraft

		svc := NewBlogService(blogRepo, noopUserRepo())
		blog, err := svc.Save(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, models.BlogStatusDraft, blog.Status)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
			return existingBlog(2), nil
		}
		blogRepo.updateFn = func(context.Context, *models.Blog) error {
			t.Fatal("update must not be called for a non-owner")
			return nil
		}

		in := validSaveInput()
		in.ID = 10

		svc := NewBlogService(blogRepo, noopUserRepo())
		_, err := svc.Save(context.Background(), in)
		assertAppErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("missing blog", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
			return nil, models.NewNotFoundError("Blog", id)
		}

		in := validSaveInput()
		in.ID = 99

		svc := NewBlogService(blogRepo, noopUserRepo())
		_, err := svc.Save(context.Background(), in)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}

func TestBlogService_ListAll(t *testing.T) {
	t.Parallel()

	blogRepo := noopBlogRepo()
	blogRepo.listFn = func(_ context.Context, limit, offset int) ([]models.Blog, error) {
		assert.Zero(t, limit)
		assert.Zero(t, offset)
		return []models.Blog{
			{ID: 1, Status: models.BlogStatusPublished},
			{ID: 2, Status: models.BlogStatusDraft},
		}, nil
	}

	svc := NewBlogService(blogRepo, noopUserRepo())
	blogs, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}

func TestBlogService_ListByUser(t *testing.T) {
	t.Parallel()

	t.Run("missing identity", func(t *testing.T) {
		t.Parallel()
		svc := NewBlogService(noopBlogRepo(), noopUserRepo())
		_, err := svc.ListByUser(context.Background(), 0)
		assertValidationError(t, err)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("db connection error")
		blogRepo := noopBlogRepo()
		blogRepo.listByUserIDFn = func(context.Context, uint) ([]models.Blog, error) {
			return nil, repoErr
		}
		svc := NewBlogService(blogRepo, noopUserRepo())
		_, err := svc.ListByUser(context.Background(), 5)
		assert.ErrorIs(t, err, repoErr)
	})

	t.Run("returns drafts and published", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.listByUserIDFn = func(_ context.Context, userID uint) ([]models.Blog, error) {
			return []models.Blog{
				{ID: 1, UserID: userID, Status: models.BlogStatusDraft},
				{ID: 2, UserID: userID, Status: models.BlogStatusPublished},
			}, nil
		}
		svc := NewBlogService(blogRepo, noopUserRepo())
		blogs, err := svc.ListByUser(context.Background(), 5)
		require.NoError(t, err)
		assert.Len(t, blogs, 2)
	})
}
