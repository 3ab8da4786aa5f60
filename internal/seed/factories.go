// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/auth"
	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password every seeded account gets, so
// developers can log in as any of them.
const DefaultPassword = "Ripple-dev1!"

// Options tunes how much data a seeding run produces.
type Options struct {
	Users        int
	PostsPerUser int
	// MaxDays spreads post timestamps over the past N days.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db           *gorm.DB
	opts         Options
	passwordHash string
	rng          *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	// One hash shared by all seeded users; hashing per user is pointless
	// work at bcrypt cost.
	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return nil, fmt.Errorf("seed password hash: %w", err)
	}

	return &Factory{
		db:           db,
		opts:         opts,
		passwordHash: hash,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// BuildUser constructs an unsaved user with fake profile data.
func (f *Factory) BuildUser() *models.User {
	person := gofakeit.Person()
	return &models.User{
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Email:     gofakeit.Email(),
		Password:  f.passwordHash,
		Image:     fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
	}
}

// BuildPost constructs an unsaved post for the given user. Roughly a third
// of posts are text only, the rest carry one to three attachments.
func (f *Factory) BuildPost(user *models.User) *models.Post {
	post := &models.Post{
		TextContent: gofakeit.Paragraph(1, 3, 8, "\n"),
		UserID:      user.ID,
	}

	if f.rng.Intn(3) != 0 {
		n := 1 + f.rng.Intn(3)
		files := make(models.AttachmentList, 0, n)
		for i := 0; i < n; i++ {
			files = append(files, fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()))
		}
		post.Files = files
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	post.CreatedAt = time.Now().Add(-back)

	return post
}

// Run seeds Options.Users accounts with Options.PostsPerUser posts each.
func (f *Factory) Run() error {
	for i := 0; i < f.opts.Users; i++ {
		user := f.BuildUser()
		if err := f.db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		posts := make([]*models.Post, 0, f.opts.PostsPerUser)
		for j := 0; j < f.opts.PostsPerUser; j++ {
			posts = append(posts, f.BuildPost(user))
		}
		if len(posts) > 0 {
			if err := f.db.Create(posts).Error; err != nil {
				return fmt.Errorf("seed posts for user %d: %w", user.ID, err)
			}
		}
	}

	log.Printf("seeded %d users with %d posts each", f.opts.Users, f.opts.PostsPerUser)
	return nil
}
