// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumBlogs    int
	ShouldClean bool
}

var tagPool = []string{
	"go", "programming", "webdev", "databases", "devops", "cloud",
	"tutorial", "opinion", "career", "productivity", "testing",
	"architecture", "performance", "security", "open-source",
	"travel", "food", "books", "music", "photography",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d blogs...", opts.NumUsers, opts.NumBlogs)

	// Clear existing data to avoid conflicts if requested
	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	blogs, err := f.CreateBlogs(users, opts.NumBlogs)
	if err != nil {
		return fmt.Errorf("failed to create blogs: %w", err)
	}

	published := 0
	for _, b := range blogs {
		if b.IsPublished() {
			published++
		}
	}
	log.Printf("✓ %d blogs created (%d published, %d drafts)", len(blogs), published, len(blogs)-published)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE blogs, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func randomTags(r *rand.Rand) models.TagList {
	n := 1 + r.Intn(4)
	picked := make(map[string]struct{}, n)
	tags := make(models.TagList, 0, n)
	for len(tags) < n {
		tag := tagPool[r.Intn(len(tagPool))]
		if _, seen := picked[tag]; seen {
			continue
		}
		picked[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func randomCreatedAt(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
