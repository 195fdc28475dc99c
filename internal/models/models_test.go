package models

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListScan(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		var tags TagList
		require.NoError(t, tags.Scan(`["go","webdev"]`))
		assert.Equal(t, TagList{"go", "webdev"}, tags)
	})

	t.Run("from bytes", func(t *testing.T) {
		var tags TagList
		require.NoError(t, tags.Scan([]byte(`["go"]`)))
		assert.Equal(t, TagList{"go"}, tags)
	})

	t.Run("nil column yields empty list", func(t *testing.T) {
		var tags TagList
		require.NoError(t, tags.Scan(nil))
		assert.Empty(t, tags)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var tags TagList
		assert.Error(t, tags.Scan(42))
	})
}

func TestTagListValue(t *testing.T) {
	v, err := TagList{"go", "webdev"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["go","webdev"]`, v.(string))

	// nil lists serialize as an empty array, not SQL NULL
	v, err = TagList(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, v.(string))
}

func TestUserSanitized(t *testing.T) {
	u := User{
		ID:        1,
		FirstName: "Ada",
		Email:     "ada@example.com",
		Password:  "bcrypt-hash",
		Blogs:     []Blog{{ID: 1}},
	}

	clean := u.Sanitized()
	assert.Empty(t, clean.Password)
	assert.Nil(t, clean.Blogs)
	assert.Equal(t, "ada@example.com", clean.Email)

	// the original is untouched
	assert.Equal(t, "bcrypt-hash", u.Password)
	assert.Len(t, u.Blogs, 1)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NewValidationError("bad input"), fiber.StatusBadRequest},
		{NewAuthenticationError("Invalid credentials"), fiber.StatusUnauthorized},
		{NewUnauthorizedError("Session token required"), fiber.StatusUnauthorized},
		{NewForbiddenError("not yours"), fiber.StatusForbidden},
		{NewNotFoundError("Blog", 9), fiber.StatusNotFound},
		{NewConflictError("User already exists"), fiber.StatusConflict},
		{NewInternalError(assert.AnError), fiber.StatusInternalServerError},
		{assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusForError(tt.err), tt.err.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := assert.AnError
	err := NewInternalError(inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "Internal server error")
}
