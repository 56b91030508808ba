package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fitlink/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rng     *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Delete order respects foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")
	tables := []string{"messages", "chat_participants", "chats", "friendships", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// SeedSocialMesh creates numUsers users and weaves a realistic friendship
// graph between them: most pairs untouched, some pending, some rejected,
// and a connected core of accepted friendships that also get chats.
func (s *Seeder) SeedSocialMesh(numUsers int) ([]*models.User, error) {
	log.Printf("Creating %d users...", numUsers)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("failed to create user %d: %w", i, err)
		}
		users = append(users, user)
	}

	if len(users) < 2 {
		return users, nil
	}

	log.Println("Weaving friendship graph...")
	accepted := 0
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			roll := s.rng.Float64()
			switch {
			case roll < 0.10:
				if _, err := s.createAcceptedWithChat(users[i], users[j]); err != nil {
					return nil, err
				}
				accepted++
			case roll < 0.15:
				if _, err := s.factory.CreateFriendship(users[i], users[j], models.FriendshipStatusPending); err != nil {
					return nil, err
				}
			case roll < 0.18:
				if _, err := s.factory.CreateFriendship(users[i], users[j], models.FriendshipStatusRejected); err != nil {
					return nil, err
				}
			}
		}
	}

	// Guarantee the first user has friends to demo with.
	first := users[0]
	for _, other := range users[1 : min(4, len(users))] {
		existing := s.db.Where(
			"(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			first.ID, other.ID, other.ID, first.ID,
		).Limit(1).Find(&models.Friendship{})
		if existing.RowsAffected > 0 {
			continue
		}
		if _, err := s.createAcceptedWithChat(first, other); err != nil {
			return nil, err
		}
		accepted++
	}

	log.Printf("Created %d accepted friendships", accepted)
	return users, nil
}

func (s *Seeder) createAcceptedWithChat(a, b *models.User) (*models.Friendship, error) {
	// randomize direction so request senders vary
	if s.rng.Intn(2) == 0 {
		a, b = b, a
	}
	friendship, err := s.factory.CreateFriendship(a, b, models.FriendshipStatusAccepted)
	if err != nil {
		return nil, err
	}
	// roughly half of friend pairs have started chatting
	if s.rng.Intn(2) == 0 {
		if _, err := s.factory.CreateChat(a, b, s.rng.Intn(10)+2); err != nil {
			return nil, err
		}
	}
	return friendship, nil
}
