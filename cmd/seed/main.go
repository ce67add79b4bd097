// Command seed resets the database and loads the fixture dataset, optionally
// extended with generated development data.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"gamereviews/internal/auth"
	"gamereviews/internal/config"
	"gamereviews/internal/database"
	"gamereviews/internal/seed"
)

func main() {
	dev := flag.Bool("dev", false, "Add generated users, reviews and comments on top of the fixtures")
	numUsers := flag.Int("users", 20, "Number of generated users (with -dev)")
	numReviews := flag.Int("reviews", 100, "Number of generated reviews (with -dev)")
	numComments := flag.Int("comments", 3, "Comments per generated review (with -dev)")
	randSeed := flag.Int64("seed", 0, "Random seed for generated data; 0 uses the current time")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	data := seed.TestData()
	if *dev {
		if *randSeed == 0 {
			*randSeed = time.Now().UnixNano()
		}
		data = seed.NewFactory(*randSeed).DevData(data, *numUsers, *numReviews, *numComments)
		log.Printf("Generated %d users, %d reviews, %d comments (seed %d)",
			len(data.Users), len(data.Reviews), len(data.Comments), *randSeed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	hasher := auth.NewPasswordHasher(cfg.BcryptCost, cfg.HashWorkers)
	if err := seed.Seed(ctx, db, data, hasher); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seeded. Every user's password is their username.")
}
