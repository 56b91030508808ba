// Command main runs the database seeder for FitLink.
package main

import (
	"flag"
	"log"

	"fitlink/internal/config"
	"fitlink/internal/database"
	"fitlink/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	preset := flag.String("preset", "", "Path to a YAML preset file (overrides -users)")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords for fast local reseeds")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	if *preset != "" {
		log.Printf("Applying preset file: %s\n", *preset)
	} else {
		log.Printf("Target: %d users, clean=%v\n", *numUsers, *shouldClean)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(db, seed.Options{
		NumUsers:    *numUsers,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if *preset != "" {
		p, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("❌ Preset load failed: %v", err)
		}
		if err := s.ApplyPreset(p); err != nil {
			log.Fatalf("❌ Preset seeding failed: %v", err)
		}
	} else {
		if _, err := s.SeedSocialMesh(*numUsers); err != nil {
			log.Fatalf("❌ User seeding failed: %v", err)
		}
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
