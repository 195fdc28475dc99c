package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// BlogService implements the draft/publish lifecycle. The target status is
// chosen by the caller on every save; published blogs can be rewritten as
// drafts if the caller asks for it.
type BlogService struct {
	blogRepo repository.BlogRepository
	userRepo repository.UserRepository
}

// SaveBlogInput is the shared payload of the save-draft and publish
// operations. A zero ID means "create a new blog owned by UserID".
type SaveBlogInput struct {
	ID      uint
	Title   string
	Content string
	Tags    []string
	Status  string
	UserID  uint
}

func NewBlogService(blogRepo repository.BlogRepository, userRepo repository.UserRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo, userRepo: userRepo}
}

// Save creates or overwrites a blog with the requested status. Updates are
// restricted to the blog's owner; creation resolves the acting user and links
// the new blog to them in a single insert.
func (s *BlogService) Save(ctx context.Context, in SaveBlogInput) (*models.Blog, error) {
	if in.Status != models.BlogStatusDraft && in.Status != models.BlogStatusPublished {
		return nil, models.NewValidationError("Invalid status")
	}
	if err := validation.ValidateBlogInput(in.Title, in.Content, in.Tags); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("User ID is missing")
	}

	var blog *models.Blog

	if in.ID != 0 {
		existing, err := s.blogRepo.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		if existing.UserID != in.UserID {
			return nil, models.NewForbiddenError("You can only edit your own blogs")
		}

		existing.Title = in.Title
		existing.Content = in.Content
		existing.Tags = in.Tags
		existing.Status = in.Status
		if err := s.blogRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		blog = existing
	} else {
		user, err := s.userRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}

		blog = &models.Blog{
			Title:   in.Title,
			Content: in.Content,
			Tags:    in.Tags,
			Status:  in.Status,
			UserID:  user.ID,
		}
		if err := s.blogRepo.Create(ctx, blog); err != nil {
			return nil, err
		}
		blog.User = user.Sanitized()
	}

	observability.BlogSaves.WithLabelValues(in.Status).Inc()
	return blog, nil
}

// GetByID returns the blog with its sanitized author view.
func (s *BlogService) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// ListAll returns every blog with sanitized authors, in store order. Filtering
// to published entries is the presentation layer's concern.
func (s *BlogService) ListAll(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.List(ctx, 0, 0)
}

// ListByUser returns the caller's blogs, drafts included.
func (s *BlogService) ListByUser(ctx context.Context, userID uint) ([]models.Blog, error) {
	if userID == 0 {
		return nil, models.NewValidationError("User ID is missing")
	}
	return s.blogRepo.ListByUserID(ctx, userID)
}
