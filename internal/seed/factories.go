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

	"fitlink/internal/health"
	"fitlink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder run.
type Options struct {
	NumUsers    int
	ShouldClean bool
	// SkipBcrypt stores a plaintext password instead of hashing, for fast
	// local reseeds. Never enabled outside development.
	SkipBcrypt bool
	DryRun     bool
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

var genders = []models.Gender{
	models.GenderMale, models.GenderFemale, models.GenderOther,
}

var activityLevels = []models.ActivityLevel{
	models.ActivitySedentary, models.ActivityLight, models.ActivityModerate,
	models.ActivityHeavy, models.ActivityAthlete,
}

// CreateUser constructs and persists a sample models.User with a complete
// health profile. Optional override functions may modify the generated user
// before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	user := &models.User{
		Email:     strings.ToLower(fmt.Sprintf("%s.%s%d@%s", first, last, gofakeit.Number(10, 999), gofakeit.DomainName())),
		FirstName: first,
		LastName:  last,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	f.fillHealthProfile(user)

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.FirstName+" "+user.LastName, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// fillHealthProfile assigns plausible measurements and the metrics the
// calculator would derive from them, so seeded users look like they already
// ran a calculation.
func (f *Factory) fillHealthProfile(user *models.User) {
	in := health.Input{
		Height:        float64(gofakeit.Number(150, 200)),
		Weight:        float64(gofakeit.Number(48, 120)),
		Age:           gofakeit.Number(18, 70),
		Gender:        genders[f.rng.Intn(len(genders))],
		ActivityLevel: activityLevels[f.rng.Intn(len(activityLevels))],
	}
	metrics, err := health.Calculate(in)
	if err != nil {
		return
	}
	user.Height = in.Height
	user.Weight = in.Weight
	user.Age = in.Age
	user.Gender = in.Gender
	user.ActivityLevel = in.ActivityLevel
	user.BMI = metrics.BMI
	user.IdealWeight = metrics.IdealWeight
	user.MetabolicRate = metrics.MetabolicRate
	user.TDEE = metrics.TDEE
}

// CreateFriendship persists a friendship record in the given status.
func (f *Factory) CreateFriendship(requester, recipient *models.User, status models.FriendshipStatus) (*models.Friendship, error) {
	friendship := &models.Friendship{
		RequesterID: requester.ID,
		RecipientID: recipient.ID,
		Status:      status,
	}

	if f.opts.DryRun {
		f.nextID++
		friendship.ID = f.nextID
		log.Printf("[dry-run] CreateFriendship: %d -> %d (%s)", requester.ID, recipient.ID, status)
		return friendship, nil
	}

	if err := f.db.Create(friendship).Error; err != nil {
		return nil, err
	}
	return friendship, nil
}

// CreateChat opens a chat between two users and fills it with a short
// exchange of messages.
func (f *Factory) CreateChat(a, b *models.User, numMessages int) (*models.Chat, error) {
	chat := &models.Chat{}

	if f.opts.DryRun {
		f.nextID++
		chat.ID = f.nextID
		log.Printf("[dry-run] CreateChat: %d <-> %d (%d messages)", a.ID, b.ID, numMessages)
		return chat, nil
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		participants := []models.ChatParticipant{
			{ChatID: chat.ID, UserID: a.ID},
			{ChatID: chat.ID, UserID: b.ID},
		}
		if err := tx.Create(&participants).Error; err != nil {
			return err
		}

		senders := []uint{a.ID, b.ID}
		when := time.Now().Add(-time.Duration(f.rng.Intn(72)) * time.Hour)
		for i := 0; i < numMessages; i++ {
			msg := models.Message{
				ChatID:    chat.ID,
				SenderID:  senders[i%2],
				Content:   gofakeit.Sentence(f.rng.Intn(12) + 3),
				CreatedAt: when.Add(time.Duration(i) * time.Minute),
			}
			if err := tx.Create(&msg).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}
