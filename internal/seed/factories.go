// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Password:  string(hashedPassword),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUsers persists count sample users. Emails are deduplicated by
// prefixing a counter since gofakeit can repeat addresses in large batches.
func (f *Factory) CreateUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		seq := i
		user, err := f.CreateUser(func(u *models.User) {
			u.Email = fmt.Sprintf("%d.%s", seq, strings.ToLower(gofakeit.Email()))
		})
		if err != nil {
			return users, err
		}
		users = append(users, user)
	}
	return users, nil
}

// BuildBlog constructs a blog for the given author without persisting it.
func (f *Factory) BuildBlog(user *models.User, status string, overrides ...func(*models.Blog)) *models.Blog {
	blog := &models.Blog{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(2, 4, 8, "\n\n"),
		Tags:    randomTags(f.r),
		Status:  status,
		UserID:  user.ID,
	}

	// realistic created_at spread
	blog.CreatedAt = randomCreatedAt(f.r, 90)
	blog.UpdatedAt = blog.CreatedAt

	for _, override := range overrides {
		override(blog)
	}
	return blog
}

// CreateBlogs persists count blogs spread across the given users with a
// roughly 70/30 published-to-draft mix.
func (f *Factory) CreateBlogs(users []*models.User, count int) ([]*models.Blog, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to assign blogs to")
	}

	blogs := make([]*models.Blog, 0, count)
	for i := 0; i < count; i++ {
		author := users[f.r.Intn(len(users))]
		status := models.BlogStatusPublished
		if f.r.Intn(10) < 3 {
			status = models.BlogStatusDraft
		}
		blogs = append(blogs, f.BuildBlog(author, status))
	}

	if err := f.db.Create(&blogs).Error; err != nil {
		return blogs, err
	}
	log.Printf("CreateBlogs: %d blogs persisted", len(blogs))
	return blogs, nil
}
