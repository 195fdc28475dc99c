// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseBlogID extracts a blog route parameter by name as a positive uint.
// On failure it writes a 404 JSON response and returns errResponseWritten,
// so a bad identifier reads the same as a missing blog.
// Callers should check: if err != nil { return nil }
func (s *Server) parseBlogID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Blog", c.Params(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}
