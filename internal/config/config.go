// Package config provides configuration for the PhotoShare API.
package config

import (
	"fmt"

	"photoshare-api/internal/models"
	"photoshare-api/internal/utils"
)

// Config holds all configuration for the PhotoShare API.
type Config struct {
	// Server settings
	Port        string
	GraphQLPath string
	LogLevel    string

	// GraphQL settings
	MaxDepth int

	// Photo defaults
	PhotoURLBase    string
	DefaultCategory models.PhotoCategory

	// Seed sources
	SeedFile    string
	DatabaseURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	category, err := models.ParsePhotoCategory(utils.GetEnv("PHOTO_DEFAULT_CATEGORY", string(models.CategoryPortrait)))
	if err != nil {
		return nil, fmt.Errorf("PHOTO_DEFAULT_CATEGORY: %w", err)
	}

	return &Config{
		Port:        utils.GetEnv("PORT", "4000"),
		GraphQLPath: utils.GetEnv("GRAPHQL_PATH", "/graphql"),
		LogLevel:    utils.GetEnv("LOG_LEVEL", ""),

		MaxDepth: utils.GetEnvInt("GRAPHQL_MAX_DEPTH", 10),

		PhotoURLBase:    utils.GetEnv("PHOTO_URL_BASE", "http://yoursite.com/img"),
		DefaultCategory: category,

		SeedFile:    utils.GetEnv("SEED_FILE", ""),
		DatabaseURL: utils.GetEnv("DATABASE_URL", ""),
	}, nil
}
