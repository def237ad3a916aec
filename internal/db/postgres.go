package db

import (
	"context"
	"fmt"
	"time"

	"photoshare-api/internal/logger"
	"photoshare-api/internal/models"
	"photoshare-api/internal/scalar"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgxpool.Pool the seed loader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// OpenPool initializes the PostgreSQL connection pool used as a seed source
func OpenPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	logger.Info("connected to PostgreSQL")
	return pool, nil
}

// Each table carries a serial seq column; rows are read in seq order so the
// store sees them in insertion order.
const (
	selectUsers  = `SELECT github_login, name, avatar FROM users ORDER BY seq`
	selectPhotos = `SELECT id, name, description, category, github_user, created FROM photos ORDER BY seq`
	selectTags   = `SELECT photo_id, user_id FROM tags ORDER BY seq`
)

// LoadSeedFromPostgres reads users, photos and tags from the users, photos and
// tags tables.
func LoadSeedFromPostgres(ctx context.Context, q Querier) (*Seed, error) {
	seed := &Seed{}

	rows, err := q.Query(ctx, selectUsers)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.GithubLogin, &u.Name, &u.Avatar); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan user: %w", err)
		}
		seed.Users = append(seed.Users, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	rows, err = q.Query(ctx, selectPhotos)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	for rows.Next() {
		var (
			p        models.Photo
			category string
			created  time.Time
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &category, &p.GithubUser, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		p.Category, err = models.ParsePhotoCategory(category)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("photo %d: %w", p.ID, err)
		}
		p.Created = scalar.New(created)
		seed.Photos = append(seed.Photos, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read photos: %w", err)
	}

	rows, err = q.Query(ctx, selectTags)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	for rows.Next() {
		var t models.TagLink
		if err := rows.Scan(&t.PhotoID, &t.UserID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		seed.Tags = append(seed.Tags, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	return seed, nil
}
