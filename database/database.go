// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"wanderlog-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Trip{},
		&models.JournalEntry{},
		&models.EntryLike{},
		&models.Comment{},
		&models.CommentLike{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	// Add constraints guarding the social graph invariants
	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Trip listings and search order on creation time per owner
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_user_created ON trips(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trips: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_privacy_created ON trips(privacy, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trips privacy: %v\n", err)
	}

	// Entries of a trip are listed in journal date order
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_entries_trip_date ON journal_entries(trip_id, date ASC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for journal_entries: %v\n", err)
	}

	// Like membership checks
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_entry_likes_entry_user ON entry_likes(entry_id, user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for entry_likes: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_entry_created ON comments(entry_id, created_at ASC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for comments: %v\n", err)
	}

	// Follow relationships
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_follows_follower_following ON follows(follower_id, following_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for follows: %v\n", err)
	}

	// User search
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_first_last ON users(first_name, last_name)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for users name: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Prevent duplicate likes
	if err := db.Exec("ALTER TABLE entry_likes ADD CONSTRAINT uk_entry_likes_entry_user UNIQUE (entry_id, user_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for entry_likes: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE comment_likes ADD CONSTRAINT uk_comment_likes_comment_user UNIQUE (comment_id, user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for comment_likes: %v\n", err)
	}

	// Prevent duplicate follows
	if err := db.Exec("ALTER TABLE follows ADD CONSTRAINT uk_follows_follower_following UNIQUE (follower_id, following_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for follows: %v\n", err)
	}

	// Prevent self-following
	if err := db.Exec("ALTER TABLE follows ADD CONSTRAINT ck_follows_no_self_follow CHECK (follower_id != following_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for follows: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	// Check if we already have users
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			ID:        "user-1",
			Username:  "wanderer_anna",
			Email:     "anna@example.com",
			Password:  "$2a$10$dummy", // This should be properly hashed in real scenarios
			FirstName: "Anna",
			LastName:  "Kovacs",
			Bio:       "Chasing sunsets and street food.",
		},
		{
			ID:        "user-2",
			Username:  "trailmix_tom",
			Email:     "tom@example.com",
			Password:  "$2a$10$dummy",
			FirstName: "Tom",
			LastName:  "Berg",
			Bio:       "Hiking every ridge I can find.",
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Username, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
