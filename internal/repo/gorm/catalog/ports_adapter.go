package catalog

import (
	"time"

	"github.com/cuihairu/ludotheque/internal/ports"
	"gorm.io/datatypes"
)

// Helpers mapping gorm models to the port DTOs and back.

func gameFromDomain(g *ports.Game) *Game {
	m := &Game{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Featured:    g.Featured,
		GenreID:     g.GenreID.Ptr(),
		PublisherID: g.PublisherID.Ptr(),
	}
	if g.ReleasedOn != nil {
		d := datatypes.Date(*g.ReleasedOn)
		m.ReleasedOn = &d
	}
	return m
}

func gameToDomain(g *Game) *ports.Game {
	if g == nil {
		return nil
	}
	out := &ports.Game{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Featured:    g.Featured,
		GenreID:     ports.RefFromPtr(g.GenreID),
		PublisherID: ports.RefFromPtr(g.PublisherID),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.ReleasedOn != nil {
		t := time.Time(*g.ReleasedOn)
		out.ReleasedOn = &t
	}
	if g.Genre != nil {
		out.Genre = &ports.Genre{ID: g.Genre.ID, Name: g.Genre.Name}
	}
	if g.Publisher != nil {
		out.Publisher = &ports.Publisher{ID: g.Publisher.ID, Name: g.Publisher.Name}
	}
	return out
}

func gamesToDomain(arr []*Game) []*ports.Game {
	out := make([]*ports.Game, 0, len(arr))
	for _, g := range arr {
		out = append(out, gameToDomain(g))
	}
	return out
}

func genreToDomain(g *Genre) *ports.Genre {
	out := &ports.Genre{ID: g.ID, Name: g.Name, Games: make([]*ports.Game, 0, len(g.Games))}
	for i := range g.Games {
		out.Games = append(out.Games, gameToDomain(&g.Games[i]))
	}
	return out
}

func publisherToDomain(p *Publisher) *ports.Publisher {
	out := &ports.Publisher{
		ID:        p.ID,
		Name:      p.Name,
		Games:     make([]*ports.Game, 0, len(p.Games)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for i := range p.Games {
		out.Games = append(out.Games, gameToDomain(&p.Games[i]))
	}
	return out
}
