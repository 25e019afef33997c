package ports

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when no record matches the identifier.
var ErrNotFound = errors.New("not found")

// Ref is an optional reference to another catalog record.
type Ref struct {
	ID    uint
	Valid bool
}

// RefOf returns a present reference to id.
func RefOf(id uint) Ref { return Ref{ID: id, Valid: true} }

// RefFromPtr converts a nullable column value into a Ref.
func RefFromPtr(id *uint) Ref {
	if id == nil {
		return Ref{}
	}
	return RefOf(*id)
}

// Ptr returns the nullable column value for r.
func (r Ref) Ptr() *uint {
	if !r.Valid {
		return nil
	}
	id := r.ID
	return &id
}

// Is reports whether r points at id.
func (r Ref) Is(id uint) bool { return r.Valid && r.ID == id }

// Game is the domain DTO used by services/handlers. It mirrors the DB model but avoids GORM tags.
// Genre and Publisher are only populated when the repository joins them.
type Game struct {
	ID          uint
	Title       string
	Description string
	ReleasedOn  *time.Time
	Featured    bool
	GenreID     Ref
	PublisherID Ref
	Genre       *Genre
	Publisher   *Publisher
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Genre is a seeded game category. Names are unique.
type Genre struct {
	ID    uint
	Name  string
	Games []*Game
}

// Publisher is the company credited for a game.
type Publisher struct {
	ID        uint
	Name      string
	Games     []*Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is the CRUD contract shared by the editable catalog entities.
type Repository[T any] interface {
	Create(ctx context.Context, v *T) error
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*T, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// GameFilter narrows game listings.
type GameFilter struct {
	FeaturedOnly bool
}

// GamesRepository persists games. Reads join genre and publisher; listings are ordered by title.
type GamesRepository interface {
	Repository[Game]
	List(ctx context.Context, f GameFilter) ([]*Game, error)
	SetFeatured(ctx context.Context, id uint, featured bool) error
}

// GenresRepository reads genres. Genres are only written by seeding.
type GenresRepository interface {
	// Get returns the genre with its games (publisher joined), ordered by title.
	Get(ctx context.Context, id uint) (*Genre, error)
	// List returns all genres with their games, ordered by name.
	List(ctx context.Context) ([]*Genre, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// EnsureNamed creates the genre when missing and reports whether it did.
	EnsureNamed(ctx context.Context, name string) (bool, error)
}

// PublishersRepository persists publishers. Deleting a publisher clears the
// publisher reference of its games instead of removing them.
type PublishersRepository interface {
	Repository[Publisher]
	// List returns all publishers with their games, ordered by name.
	List(ctx context.Context) ([]*Publisher, error)
}
