// Command main seeds the development database with demo users and posts.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	posts := flag.Int("posts", 5, "posts per user")
	days := flag.Int("days", 90, "spread post timestamps over the past N days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	factory, err := seed.NewFactory(db, seed.Options{
		Users:        *users,
		PostsPerUser: *posts,
		MaxDays:      *days,
	})
	if err != nil {
		log.Fatalf("Failed to create factory: %v", err)
	}

	if err := factory.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All seeded accounts use the password %q", seed.DefaultPassword)
}
