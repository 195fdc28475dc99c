package seed

import (
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestFactory_CreateUser(t *testing.T) {
	db := openTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.FirstName)
	assert.NotEmpty(t, user.Email)

	// the default password is stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestFactory_CreateUsers_UniqueEmails(t *testing.T) {
	db := openTestDB(t)
	f := NewFactory(db)

	users, err := f.CreateUsers(25)
	require.NoError(t, err)
	require.Len(t, users, 25)

	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		_, dup := seen[u.Email]
		assert.False(t, dup, "duplicate email %s", u.Email)
		seen[u.Email] = struct{}{}
	}
}

func TestFactory_CreateBlogs(t *testing.T) {
	db := openTestDB(t)
	f := NewFactory(db)

	users, err := f.CreateUsers(3)
	require.NoError(t, err)

	blogs, err := f.CreateBlogs(users, 40)
	require.NoError(t, err)
	require.Len(t, blogs, 40)

	ownerIDs := make(map[uint]struct{}, len(users))
	for _, u := range users {
		ownerIDs[u.ID] = struct{}{}
	}

	for _, b := range blogs {
		assert.NotZero(t, b.ID)
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Content)
		assert.NotEmpty(t, b.Tags)
		assert.Contains(t, []string{models.BlogStatusDraft, models.BlogStatusPublished}, b.Status)
		_, ok := ownerIDs[b.UserID]
		assert.True(t, ok, "blog %d has an unknown owner", b.ID)
	}
}

func TestFactory_CreateBlogs_NoUsers(t *testing.T) {
	db := openTestDB(t)
	f := NewFactory(db)

	_, err := f.CreateBlogs(nil, 5)
	assert.Error(t, err)
}
