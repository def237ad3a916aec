package services

import (
	"fmt"
	"strings"
	"time"

	"photoshare-api/internal/models"
	"photoshare-api/internal/scalar"
)

// RecordStore is implemented by db.Store.
type RecordStore interface {
	TotalPhotoCount() int
	ListPhotos() []models.Photo
	ListUsers() []models.User
	ListTags() []models.TagLink
	AppendPhoto(draft models.PhotoDraft) models.Photo
	FindUser(login string) (models.User, bool)
	FindPhoto(id int) (models.Photo, bool)
}

// PhotoDefaults are resolved before a photo is built.
type PhotoDefaults struct {
	Category models.PhotoCategory
	URLBase  string
}

type PhotoService struct {
	store    RecordStore
	defaults PhotoDefaults
	now      func() time.Time
}

func NewPhotoService(store RecordStore, defaults PhotoDefaults) *PhotoService {
	if defaults.Category == "" {
		defaults.Category = models.CategoryPortrait
	}
	return &PhotoService{
		store:    store,
		defaults: defaults,
		now:      time.Now,
	}
}

func (s *PhotoService) TotalPhotos() int {
	return s.store.TotalPhotoCount()
}

// AllPhotos returns every photo, or only those created strictly after the
// given time when after is non-nil. Insertion order is preserved.
func (s *PhotoService) AllPhotos(after *scalar.DateTime) []models.Photo {
	photos := s.store.ListPhotos()
	if after == nil {
		return photos
	}

	filtered := []models.Photo{}
	for _, p := range photos {
		if p.Created.After(*after) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// PostPhoto stores a new photo stamped with the current time. The owner
// reference is taken from input.Name because the input has no submitter field.
func (s *PhotoService) PostPhoto(input models.PostPhotoInput) (models.Photo, error) {
	category := s.defaults.Category
	if input.Category != nil {
		c, err := models.ParsePhotoCategory(string(*input.Category))
		if err != nil {
			return models.Photo{}, fmt.Errorf("post photo: %w", err)
		}
		category = c
	}

	photo := s.store.AppendPhoto(models.PhotoDraft{
		Name:       input.Name,
		Category:   category,
		GithubUser: input.Name,
		Created:    scalar.New(s.now()),
	})
	return photo, nil
}

// PhotoURL builds the public image URL for photo.
func (s *PhotoService) PhotoURL(photo models.Photo) string {
	return fmt.Sprintf("%s/%d.jpg", strings.TrimRight(s.defaults.URLBase, "/"), photo.ID)
}
