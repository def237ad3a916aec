package graph

import (
	"photoshare-api/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

type userResolver struct {
	user models.User
	root *Resolver
}

func (u *userResolver) GithubLogin() graphql.ID {
	return graphql.ID(u.user.GithubLogin)
}

func (u *userResolver) Name() *string {
	return u.user.Name
}

func (u *userResolver) Avatar() *string {
	return u.user.Avatar
}

func (u *userResolver) PostedPhotos() []*photoResolver {
	return u.root.photoList(u.root.relations.PostedPhotos(u.user))
}

func (u *userResolver) InPhotos() []*photoResolver {
	return u.root.photoList(u.root.relations.InPhotos(u.user))
}
