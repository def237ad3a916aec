package graph

import (
	"strconv"

	"photoshare-api/internal/models"
	"photoshare-api/internal/scalar"

	graphql "github.com/graph-gophers/graphql-go"
)

type photoResolver struct {
	photo models.Photo
	root  *Resolver
}

func (p *photoResolver) ID() graphql.ID {
	return graphql.ID(strconv.Itoa(p.photo.ID))
}

func (p *photoResolver) URL() string {
	return p.root.photos.PhotoURL(p.photo)
}

func (p *photoResolver) Name() string {
	return p.photo.Name
}

func (p *photoResolver) Description() *string {
	return p.photo.Description
}

func (p *photoResolver) Category() string {
	return string(p.photo.Category)
}

// PostedBy is null when the owner reference does not match any user.
func (p *photoResolver) PostedBy() *userResolver {
	u, ok := p.root.relations.PostedBy(p.photo)
	if !ok {
		return nil
	}
	return &userResolver{user: u, root: p.root}
}

func (p *photoResolver) TaggedUsers() []*userResolver {
	return p.root.userList(p.root.relations.TaggedUsers(p.photo))
}

func (p *photoResolver) Created() (scalar.DateTime, error) {
	if _, err := scalar.Serialize(p.photo.Created); err != nil {
		return scalar.DateTime{}, err
	}
	return p.photo.Created, nil
}
