package catalog

import (
	"context"

	"github.com/cuihairu/ludotheque/internal/ports"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutoMigrate creates or updates the catalog tables.
func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&Genre{}, &Publisher{}, &Game{}) }

// GameRepo provides GORM-based persistence for games.
type GameRepo struct{ db *gorm.DB }

// GenreRepo provides GORM-based access to the seeded genres.
type GenreRepo struct{ db *gorm.DB }

// PublisherRepo provides GORM-based persistence for publishers.
type PublisherRepo struct{ db *gorm.DB }

func NewGameRepo(db *gorm.DB) *GameRepo           { return &GameRepo{db: db} }
func NewGenreRepo(db *gorm.DB) *GenreRepo         { return &GenreRepo{db: db} }
func NewPublisherRepo(db *gorm.DB) *PublisherRepo { return &PublisherRepo{db: db} }

var (
	_ ports.GamesRepository      = (*GameRepo)(nil)
	_ ports.GenresRepository     = (*GenreRepo)(nil)
	_ ports.PublishersRepository = (*PublisherRepo)(nil)
)

// Games

func (r *GameRepo) Create(ctx context.Context, g *ports.Game) error {
	m := gameFromDomain(g)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	g.ID, g.CreatedAt, g.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GameRepo) Update(ctx context.Context, g *ports.Game) error {
	next := gameFromDomain(g)
	return updateByID(ctx, r.db, g.ID, func(cur *Game) {
		cur.Title = next.Title
		cur.Description = next.Description
		cur.ReleasedOn = next.ReleasedOn
		cur.Featured = next.Featured
		cur.GenreID = next.GenreID
		cur.PublisherID = next.PublisherID
	})
}

func (r *GameRepo) SetFeatured(ctx context.Context, id uint, featured bool) error {
	return updateByID(ctx, r.db, id, func(cur *Game) { cur.Featured = featured })
}

func (r *GameRepo) Delete(ctx context.Context, id uint) error { return deleteByID[Game](ctx, r.db, id) }

func (r *GameRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return existsByID[Game](ctx, r.db, id)
}

func (r *GameRepo) Get(ctx context.Context, id uint) (*ports.Game, error) {
	var g Game
	if err := r.db.WithContext(ctx).Preload("Genre").Preload("Publisher").First(&g, id).Error; err != nil {
		return nil, translate(err)
	}
	return gameToDomain(&g), nil
}

func (r *GameRepo) List(ctx context.Context, f ports.GameFilter) ([]*ports.Game, error) {
	q := r.db.WithContext(ctx).Preload("Genre").Preload("Publisher")
	if f.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}
	var arr []*Game
	if err := byTitle(q).Find(&arr).Error; err != nil {
		return nil, err
	}
	return gamesToDomain(arr), nil
}

// Genres

func (r *GenreRepo) Get(ctx context.Context, id uint) (*ports.Genre, error) {
	var g Genre
	err := r.db.WithContext(ctx).
		Preload("Games", byTitle).
		Preload("Games.Publisher").
		First(&g, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return genreToDomain(&g), nil
}

func (r *GenreRepo) List(ctx context.Context) ([]*ports.Genre, error) {
	var arr []*Genre
	if err := r.db.WithContext(ctx).Preload("Games", byTitle).Order("name ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	out := make([]*ports.Genre, 0, len(arr))
	for _, g := range arr {
		out = append(out, genreToDomain(g))
	}
	return out, nil
}

func (r *GenreRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return existsByID[Genre](ctx, r.db, id)
}

func (r *GenreRepo) EnsureNamed(ctx context.Context, name string) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur Genre
		res := tx.Where("name = ?", name).Limit(1).Find(&cur)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		if err := tx.Create(&Genre{Name: name}).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// Publishers

func (r *PublisherRepo) Create(ctx context.Context, p *ports.Publisher) error {
	m := &Publisher{Name: p.Name}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	p.ID, p.CreatedAt, p.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *PublisherRepo) Update(ctx context.Context, p *ports.Publisher) error {
	return updateByID(ctx, r.db, p.ID, func(cur *Publisher) { cur.Name = p.Name })
}

// Delete orphans the publisher's games before removing it.
func (r *PublisherRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Game{}).Where("publisher_id = ?", id).Update("publisher_id", nil).Error; err != nil {
			return err
		}
		return deleteByID[Publisher](ctx, tx, id)
	})
}

func (r *PublisherRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return existsByID[Publisher](ctx, r.db, id)
}

func (r *PublisherRepo) Get(ctx context.Context, id uint) (*ports.Publisher, error) {
	var p Publisher
	err := r.db.WithContext(ctx).
		Preload("Games", byTitle).
		Preload("Games.Genre").
		First(&p, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return publisherToDomain(&p), nil
}

func (r *PublisherRepo) List(ctx context.Context) ([]*ports.Publisher, error) {
	var arr []*Publisher
	if err := r.db.WithContext(ctx).Preload("Games", byTitle).Order("name ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	out := make([]*ports.Publisher, 0, len(arr))
	for _, p := range arr {
		out = append(out, publisherToDomain(p))
	}
	return out, nil
}
