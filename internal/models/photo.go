package models

import (
	"errors"
	"fmt"

	"photoshare-api/internal/scalar"
)

var ErrUnknownCategory = errors.New("unknown photo category")

type PhotoCategory string

const (
	CategorySelect    PhotoCategory = "SELECT"
	CategoryPortrait  PhotoCategory = "PORTRAIT"
	CategoryAction    PhotoCategory = "ACTION"
	CategoryLandscape PhotoCategory = "LANDSCAPE"
	CategoryGraphic   PhotoCategory = "GRAPHIC"
)

// PhotoCategories lists the enum members in schema order.
var PhotoCategories = []PhotoCategory{
	CategorySelect,
	CategoryPortrait,
	CategoryAction,
	CategoryLandscape,
	CategoryGraphic,
}

// ParsePhotoCategory validates s against the enum.
func ParsePhotoCategory(s string) (PhotoCategory, error) {
	for _, c := range PhotoCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Photo represents a posted photo
type Photo struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description *string         `json:"description,omitempty" yaml:"description,omitempty"`
	Category    PhotoCategory   `json:"category" yaml:"category"`
	GithubUser  string          `json:"github_user" yaml:"githubUser"`
	Created     scalar.DateTime `json:"created" yaml:"-"`
}

// PhotoDraft carries the caller-supplied fields of a photo that has no id yet.
// Zero-valued fields fall back to the store's defaults.
type PhotoDraft struct {
	Name        string
	Description *string
	Category    PhotoCategory
	GithubUser  string
	Created     scalar.DateTime
}

// PostPhotoInput mirrors the GraphQL PostPhotoInput; Category is nil when the
// caller omitted it.
type PostPhotoInput struct {
	Name     string
	Category *PhotoCategory
}
