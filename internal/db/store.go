package db

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"photoshare-api/internal/models"
	"photoshare-api/internal/scalar"
)

var (
	ErrDuplicatePhotoID = errors.New("duplicate photo id")
	ErrAlreadySeeded    = errors.New("store already seeded")
)

// Store holds users, photos and tag-links in memory. It is the only writer of
// the photo id counter.
type Store struct {
	mu     sync.RWMutex
	users  []models.User
	photos []models.Photo
	tags   []models.TagLink
	nextID int
	taken  map[int]struct{}
	seeded bool
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		taken: make(map[int]struct{}),
		now:   time.Now,
	}
}

// Seed loads the initial records. It may be called once, before any append.
func (s *Store) Seed(seed *Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded || len(s.photos) > 0 {
		return ErrAlreadySeeded
	}

	for _, p := range seed.Photos {
		if _, ok := s.taken[p.ID]; ok {
			return fmt.Errorf("seed photo %d: %w", p.ID, ErrDuplicatePhotoID)
		}
		s.taken[p.ID] = struct{}{}
	}

	s.users = append(s.users, seed.Users...)
	s.photos = append(s.photos, seed.Photos...)
	s.tags = append(s.tags, seed.Tags...)
	s.seeded = true
	return nil
}

func (s *Store) TotalPhotoCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.photos)
}

// ListPhotos returns a copy of the photos in insertion order.
func (s *Store) ListPhotos() []models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) ListTags() []models.TagLink {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TagLink, len(s.tags))
	copy(out, s.tags)
	return out
}

// AppendPhoto assigns the next free id, fills defaults for empty draft fields
// and appends the photo at the end.
func (s *Store) AppendPhoto(draft models.PhotoDraft) models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if _, ok := s.taken[s.nextID]; !ok {
			break
		}
		s.nextID++
	}
	id := s.nextID
	s.nextID++
	s.taken[id] = struct{}{}

	photo := models.Photo{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Category:    models.CategoryPortrait,
		GithubUser:  draft.GithubUser,
		Created:     scalar.New(s.now()),
	}
	if draft.Category != "" {
		photo.Category = draft.Category
	}
	if draft.Created.Valid() {
		photo.Created = draft.Created
	}

	s.photos = append(s.photos, photo)
	return photo
}

func (s *Store) FindUser(login string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.GithubLogin == login {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) FindPhoto(id int) (models.Photo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.photos {
		if p.ID == id {
			return p, true
		}
	}
	return models.Photo{}, false
}
