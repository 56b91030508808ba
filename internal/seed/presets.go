package seed

import (
	"fmt"
	"log"
	"os"

	"fitlink/internal/models"

	"gopkg.in/yaml.v3"
)

// Preset describes a deterministic set of demo accounts loaded from a YAML
// file. Unlike SeedSocialMesh, presets produce the same logins every run so
// they can back documented demo walkthroughs.
type Preset struct {
	Name  string       `yaml:"name"`
	Users []PresetUser `yaml:"users"`
}

// PresetUser is one account in a preset, with optional relationships keyed
// by the email of another preset user.
type PresetUser struct {
	Email         string   `yaml:"email"`
	FirstName     string   `yaml:"first_name"`
	LastName      string   `yaml:"last_name"`
	Height        float64  `yaml:"height"`
	Weight        float64  `yaml:"weight"`
	Age           int      `yaml:"age"`
	Gender        string   `yaml:"gender"`
	ActivityLevel string   `yaml:"activity_level"`
	Friends       []string `yaml:"friends"`
	PendingTo     []string `yaml:"pending_to"`
}

// LoadPreset parses a preset YAML file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}
	if len(preset.Users) == 0 {
		return nil, fmt.Errorf("preset %q contains no users", preset.Name)
	}
	return &preset, nil
}

// ApplyPreset creates the preset's users and relationships. Relationship
// entries referencing unknown emails fail the run rather than being skipped.
func (s *Seeder) ApplyPreset(preset *Preset) error {
	log.Printf("Applying preset %q (%d users)...", preset.Name, len(preset.Users))

	byEmail := make(map[string]*models.User, len(preset.Users))
	for _, pu := range preset.Users {
		pu := pu
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Email = pu.Email
			u.FirstName = pu.FirstName
			u.LastName = pu.LastName
			if pu.Height > 0 {
				u.Height = pu.Height
				u.Weight = pu.Weight
				u.Age = pu.Age
				u.Gender = models.Gender(pu.Gender)
				u.ActivityLevel = models.ActivityLevel(pu.ActivityLevel)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to create preset user %s: %w", pu.Email, err)
		}
		byEmail[pu.Email] = user
	}

	for _, pu := range preset.Users {
		requester := byEmail[pu.Email]
		for _, friendEmail := range pu.Friends {
			recipient, ok := byEmail[friendEmail]
			if !ok {
				return fmt.Errorf("preset user %s lists unknown friend %s", pu.Email, friendEmail)
			}
			// skip if the reverse entry already created the pair
			if requester.ID > recipient.ID {
				continue
			}
			if _, err := s.createAcceptedWithChat(requester, recipient); err != nil {
				return err
			}
		}
		for _, pendingEmail := range pu.PendingTo {
			recipient, ok := byEmail[pendingEmail]
			if !ok {
				return fmt.Errorf("preset user %s lists unknown pending target %s", pu.Email, pendingEmail)
			}
			if _, err := s.factory.CreateFriendship(requester, recipient, models.FriendshipStatusPending); err != nil {
				return err
			}
		}
	}

	return nil
}
