package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context, limit, offset int) ([]models.Blog, error)
	ListByUserID(ctx context.Context, userID uint) ([]models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// sanitizeAuthor strips fields that must not leak through the embedded author
// view. The password hash is json-hidden already; the blog back-references are
// dropped so responses stay flat.
func sanitizeAuthor(blog *models.Blog) {
	blog.User = blog.User.Sanitized()
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	key := cache.BlogKey(id)

	err := cache.Aside(ctx, key, &blog, cache.BlogTTL, func() error {
		defer observability.TrackQuery("read", "blogs")()
		if err := r.db.WithContext(ctx).Preload("User").First(&blog, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Blog", id)
			}
			return models.NewInternalError(err)
		}
		sanitizeAuthor(&blog)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	var blogs []models.Blog

	// The full unpaginated listing is the hot path for the public page; cache it.
	if limit <= 0 && offset == 0 {
		err := cache.Aside(ctx, cache.BlogListKey(), &blogs, cache.BlogListTTL, func() error {
			return r.fetchAll(ctx, &blogs, 0, 0)
		})
		if err != nil {
			return nil, err
		}
		return blogs, nil
	}

	if err := r.fetchAll(ctx, &blogs, limit, offset); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) fetchAll(ctx context.Context, blogs *[]models.Blog, limit, offset int) error {
	defer observability.TrackQuery("read", "blogs")()
	q := r.db.WithContext(ctx).Preload("User")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(blogs).Error; err != nil {
		return models.NewInternalError(err)
	}
	for i := range *blogs {
		sanitizeAuthor(&(*blogs)[i])
	}
	return nil
}

func (r *blogRepository) ListByUserID(ctx context.Context, userID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	defer observability.TrackQuery("read", "blogs")()
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

// Create persists a new blog. The owner's blog index is derived from the
// user_id foreign key, so a single insert both persists the blog and makes it
// discoverable through its owner; there is no second write to get out of sync.
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	defer observability.TrackQuery("create", "blogs")()
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, blog.ID, blog.UserID)
	return nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	defer observability.TrackQuery("update", "blogs")()
	// Omit the preloaded author so saving a blog never writes the users table.
	if err := r.db.WithContext(ctx).Omit("User").Save(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, blog.ID, blog.UserID)
	return nil
}

func (r *blogRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Blog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
