package services

import (
	"photoshare-api/internal/models"
)

// RelationService computes relationship fields by joining the store's
// collections. Every join is a linear scan; there is no index.
type RelationService struct {
	store RecordStore
}

func NewRelationService(store RecordStore) *RelationService {
	return &RelationService{store: store}
}

// PostedBy returns the user whose login matches the photo's owner reference.
func (s *RelationService) PostedBy(photo models.Photo) (models.User, bool) {
	return s.store.FindUser(photo.GithubUser)
}

// TaggedUsers returns the users tagged in photo, in tag-link order. Links to
// users that do not exist are dropped.
func (s *RelationService) TaggedUsers(photo models.Photo) []models.User {
	users := []models.User{}
	for _, tag := range s.store.ListTags() {
		if tag.PhotoID != photo.ID {
			continue
		}
		if u, ok := s.store.FindUser(tag.UserID); ok {
			users = append(users, u)
		}
	}
	return users
}

// PostedPhotos returns the photos owned by user, in insertion order.
func (s *RelationService) PostedPhotos(user models.User) []models.Photo {
	photos := []models.Photo{}
	for _, p := range s.store.ListPhotos() {
		if p.GithubUser == user.GithubLogin {
			photos = append(photos, p)
		}
	}
	return photos
}

// InPhotos returns the photos user is tagged in, in tag-link order. Links to
// photos that do not exist are dropped.
func (s *RelationService) InPhotos(user models.User) []models.Photo {
	photos := []models.Photo{}
	for _, tag := range s.store.ListTags() {
		if tag.UserID != user.GithubLogin {
			continue
		}
		if p, ok := s.store.FindPhoto(tag.PhotoID); ok {
			photos = append(photos, p)
		}
	}
	return photos
}
