package services

import (
	"testing"
	"time"

	"photoshare-api/internal/db"
	"photoshare-api/internal/models"
	"photoshare-api/internal/scalar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *db.Store {
	t.Helper()
	seed, err := db.DefaultSeed()
	require.NoError(t, err)
	store := db.NewStore()
	require.NoError(t, store.Seed(seed))
	return store
}

func photoIDs(photos []models.Photo) []int {
	ids := make([]int, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}
	return ids
}

func logins(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.GithubLogin
	}
	return out
}

func categoryPtr(c models.PhotoCategory) *models.PhotoCategory { return &c }

func TestTotalPhotos(t *testing.T) {
	svc := NewPhotoService(newSeededStore(t), PhotoDefaults{})
	assert.Equal(t, 3, svc.TotalPhotos())
}

func TestAllPhotosAfter(t *testing.T) {
	svc := NewPhotoService(newSeededStore(t), PhotoDefaults{})

	assert.Equal(t, []int{1, 2, 3}, photoIDs(svc.AllPhotos(nil)))

	after := scalar.Parse("2000-01-01")
	assert.Equal(t, []int{3}, photoIDs(svc.AllPhotos(&after)))

	after = scalar.Parse("1980-01-01")
	assert.Equal(t, []int{2, 3}, photoIDs(svc.AllPhotos(&after)))

	// strictly greater
	after = scalar.Parse("2018-04-15T19:09:57.308Z")
	assert.Empty(t, svc.AllPhotos(&after))

	invalid := scalar.Parse("not a date")
	assert.Empty(t, svc.AllPhotos(&invalid))
}

func TestAllPhotosAfterIsSubsequence(t *testing.T) {
	svc := NewPhotoService(newSeededStore(t), PhotoDefaults{})
	svc.PostPhoto(models.PostPhotoInput{Name: "later"})

	all := svc.AllPhotos(nil)
	for _, p := range all {
		after := p.Created
		filtered := svc.AllPhotos(&after)

		i := 0
		for _, q := range all {
			if i < len(filtered) && filtered[i].ID == q.ID {
				assert.True(t, q.Created.After(after))
				i++
			} else {
				assert.False(t, q.Created.After(after))
			}
		}
		assert.Equal(t, len(filtered), i)
	}
}

func TestPostPhotoDefaultsCategory(t *testing.T) {
	svc := NewPhotoService(db.NewStore(), PhotoDefaults{})

	p, err := svc.PostPhoto(models.PostPhotoInput{Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPortrait, p.Category)
	assert.Equal(t, 0, p.ID)
}

func TestPostPhotoConfiguredDefault(t *testing.T) {
	svc := NewPhotoService(db.NewStore(), PhotoDefaults{Category: models.CategoryGraphic})

	p, err := svc.PostPhoto(models.PostPhotoInput{Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGraphic, p.Category)
}

func TestPostPhoto(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPhotoService(store, PhotoDefaults{})
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	before := svc.TotalPhotos()
	p, err := svc.PostPhoto(models.PostPhotoInput{Name: "Test", Category: categoryPtr(models.CategoryLandscape)})
	require.NoError(t, err)

	assert.Equal(t, before+1, svc.TotalPhotos())
	assert.Equal(t, models.CategoryLandscape, p.Category)
	assert.Equal(t, "Test", p.Name)
	assert.Equal(t, "Test", p.GithubUser)
	assert.Equal(t, fixed, p.Created.Time())

	stored, ok := store.FindPhoto(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, stored)
}

func TestPostPhotoIncreasingIDs(t *testing.T) {
	svc := NewPhotoService(db.NewStore(), PhotoDefaults{})

	last := -1
	for i := 0; i < 10; i++ {
		p, err := svc.PostPhoto(models.PostPhotoInput{Name: "p"})
		require.NoError(t, err)
		assert.Greater(t, p.ID, last)
		last = p.ID
	}
}

func TestPostPhotoUnknownCategory(t *testing.T) {
	svc := NewPhotoService(db.NewStore(), PhotoDefaults{})
	_, err := svc.PostPhoto(models.PostPhotoInput{Name: "p", Category: categoryPtr("SELFIE")})
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
	assert.Equal(t, 0, svc.TotalPhotos())
}

func TestPhotoURL(t *testing.T) {
	svc := NewPhotoService(db.NewStore(), PhotoDefaults{URLBase: "http://yoursite.com/img/"})
	assert.Equal(t, "http://yoursite.com/img/7.jpg", svc.PhotoURL(models.Photo{ID: 7}))
}

func TestPostedBy(t *testing.T) {
	store := newSeededStore(t)
	rel := NewRelationService(store)

	for _, p := range store.ListPhotos() {
		u, ok := rel.PostedBy(p)
		require.True(t, ok)
		assert.Equal(t, p.GithubUser, u.GithubLogin)
	}

	_, ok := rel.PostedBy(models.Photo{GithubUser: "ghost"})
	assert.False(t, ok)
}

func TestTaggedUsers(t *testing.T) {
	store := newSeededStore(t)
	rel := NewRelationService(store)

	p, ok := store.FindPhoto(2)
	require.True(t, ok)
	assert.Equal(t, []string{"sSchmidt", "mHattrup", "gPlake"}, logins(rel.TaggedUsers(p)))

	p, ok = store.FindPhoto(3)
	require.True(t, ok)
	tagged := rel.TaggedUsers(p)
	assert.NotNil(t, tagged)
	assert.Empty(t, tagged)
}

func TestTaggedUsersDropsDanglingLinks(t *testing.T) {
	store := db.NewStore()
	require.NoError(t, store.Seed(&db.Seed{
		Users:  []models.User{{GithubLogin: "a"}},
		Photos: []models.Photo{{ID: 5, Category: models.CategoryAction}},
		Tags:   []models.TagLink{{PhotoID: 5, UserID: "missing"}, {PhotoID: 5, UserID: "a"}, {PhotoID: 9, UserID: "a"}},
	}))
	rel := NewRelationService(store)

	p, _ := store.FindPhoto(5)
	assert.Equal(t, []string{"a"}, logins(rel.TaggedUsers(p)))
	assert.Equal(t, []int{5}, photoIDs(rel.InPhotos(models.User{GithubLogin: "a"})))
}

func TestPostedPhotos(t *testing.T) {
	store := newSeededStore(t)
	rel := NewRelationService(store)

	u, _ := store.FindUser("sSchmidt")
	assert.Equal(t, []int{2, 3}, photoIDs(rel.PostedPhotos(u)))

	u, _ = store.FindUser("mHattrup")
	assert.Empty(t, rel.PostedPhotos(u))

	for _, u := range store.ListUsers() {
		for _, p := range rel.PostedPhotos(u) {
			assert.Equal(t, u.GithubLogin, p.GithubUser)
		}
	}
}

func TestInPhotos(t *testing.T) {
	store := newSeededStore(t)
	rel := NewRelationService(store)

	u, _ := store.FindUser("gPlake")
	assert.Equal(t, []int{1, 2}, photoIDs(rel.InPhotos(u)))

	u, _ = store.FindUser("mHattrup")
	assert.Equal(t, []int{2}, photoIDs(rel.InPhotos(u)))
}
