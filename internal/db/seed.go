package db

import (
	_ "embed"
	"fmt"
	"os"

	"photoshare-api/internal/models"
	"photoshare-api/internal/scalar"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the initial content of a Store.
type Seed struct {
	Users  []models.User
	Photos []models.Photo
	Tags   []models.TagLink
}

type seedFile struct {
	Users  []models.User    `yaml:"users"`
	Photos []seedPhoto      `yaml:"photos"`
	Tags   []models.TagLink `yaml:"tags"`
}

type seedPhoto struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Category    string  `yaml:"category"`
	GithubUser  string  `yaml:"githubUser"`
	Created     string  `yaml:"created"`
}

// DefaultSeed returns the seed bundled with the binary.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile reads a YAML seed from path.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes YAML seed data. Photo categories must be enum members;
// created timestamps are coerced the same way DateTime input is.
func ParseSeed(data []byte) (*Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seed := &Seed{
		Users: f.Users,
		Tags:  f.Tags,
	}
	for _, p := range f.Photos {
		category, err := models.ParsePhotoCategory(p.Category)
		if err != nil {
			return nil, fmt.Errorf("seed photo %d: %w", p.ID, err)
		}
		seed.Photos = append(seed.Photos, models.Photo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    category,
			GithubUser:  p.GithubUser,
			Created:     scalar.Parse(p.Created),
		})
	}
	return seed, nil
}
