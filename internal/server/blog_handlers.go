package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// blogRequest is the shared save-draft/publish payload. A present id means
// "overwrite that blog"; an absent id means "create a new one".
type blogRequest struct {
	ID      uint     `json:"id,omitempty"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (s *Server) saveBlog(c *fiber.Ctx, status string) error {
	userID := c.Locals("userID").(uint)

	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.Save(c.Context(), service.SaveBlogInput{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Status:  status,
		UserID:  userID,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"blog": blog,
	})
}

// SaveDraft handles POST /api/blogs/save-draft
// @Summary Create or overwrite a blog as a draft
// @Tags blogs
// @Accept json
// @Produce json
// @Param request body blogRequest true "Blog payload"
// @Success 201 {object} object{blog=models.Blog}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /blogs/save-draft [post]
func (s *Server) SaveDraft(c *fiber.Ctx) error {
	return s.saveBlog(c, models.BlogStatusDraft)
}

// Publish handles POST /api/blogs/publish
// @Summary Create or overwrite a blog as published
// @Tags blogs
// @Accept json
// @Produce json
// @Param request body blogRequest true "Blog payload"
// @Success 201 {object} object{blog=models.Blog}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /blogs/publish [post]
func (s *Server) Publish(c *fiber.Ctx) error {
	return s.saveBlog(c, models.BlogStatusPublished)
}

// GetBlogs handles GET /api/blogs
// @Summary List all blogs with their authors
// @Tags blogs
// @Produce json
// @Success 201 {object} object{blogs=[]models.Blog}
// @Failure 401 {object} models.ErrorResponse
// @Router /blogs [get]
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogService.ListAll(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"blogs": blogs,
	})
}

// GetBlog handles GET /api/blogs/:id
// @Summary Fetch a single blog with its author
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 201 {object} object{blog=models.Blog}
// @Failure 404 {object} models.ErrorResponse
// @Router /blogs/{id} [get]
func (s *Server) GetBlog(c *fiber.Ctx) error {
	// A malformed identifier is indistinguishable from a missing record to the
	// caller, so both respond 404.
	id, err := s.parseBlogID(c, "id")
	if err != nil {
		return nil
	}

	blog, err := s.blogService.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"blog": blog,
	})
}

// GetMyBlogs handles GET /api/my-blogs
// @Summary List the caller's blogs, drafts included
// @Tags blogs
// @Produce json
// @Success 200 {object} object{blogs=[]models.Blog}
// @Failure 400 {object} models.ErrorResponse
// @Router /my-blogs [get]
func (s *Server) GetMyBlogs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID is missing"))
	}

	blogs, err := s.blogService.ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"blogs": blogs,
	})
}
