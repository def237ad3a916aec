// Package graph provides the GraphQL schema and resolvers for the PhotoShare API.
package graph

import (
	"context"
	_ "embed"

	"photoshare-api/internal/logger"
	"photoshare-api/internal/models"
	"photoshare-api/internal/scalar"
	"photoshare-api/internal/services"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var Schema string

// Resolver is the root resolver for GraphQL queries and mutations.
type Resolver struct {
	photos    *services.PhotoService
	relations *services.RelationService
}

// NewResolver creates a new resolver with the given dependencies.
func NewResolver(photos *services.PhotoService, relations *services.RelationService) *Resolver {
	return &Resolver{
		photos:    photos,
		relations: relations,
	}
}

// NewSchema parses the schema and binds it to r.
func NewSchema(r *Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r, opts...)
}

// =============================================================================
// QUERY RESOLVERS
// =============================================================================

func (r *Resolver) TotalPhotos() int32 {
	return int32(r.photos.TotalPhotos())
}

func (r *Resolver) AllPhotos(args struct{ After *scalar.DateTime }) []*photoResolver {
	return r.photoList(r.photos.AllPhotos(args.After))
}

// =============================================================================
// MUTATION RESOLVERS
// =============================================================================

type postPhotoInput struct {
	Name     string
	Category *string
}

func (r *Resolver) PostPhoto(ctx context.Context, args struct{ Input postPhotoInput }) (*photoResolver, error) {
	input := models.PostPhotoInput{Name: args.Input.Name}
	if args.Input.Category != nil {
		c := models.PhotoCategory(*args.Input.Category)
		input.Category = &c
	}

	photo, err := r.photos.PostPhoto(input)
	if err != nil {
		return nil, err
	}

	logger.Info("photo posted", "id", photo.ID, "category", photo.Category, "request_id", RequestID(ctx))
	return &photoResolver{photo: photo, root: r}, nil
}

func (r *Resolver) photoList(photos []models.Photo) []*photoResolver {
	out := make([]*photoResolver, len(photos))
	for i, p := range photos {
		out[i] = &photoResolver{photo: p, root: r}
	}
	return out
}

func (r *Resolver) userList(users []models.User) []*userResolver {
	out := make([]*userResolver, len(users))
	for i, u := range users {
		out[i] = &userResolver{user: u, root: r}
	}
	return out
}
