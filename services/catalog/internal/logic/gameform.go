package logic

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cuihairu/ludotheque/internal/ports"
	"github.com/cuihairu/ludotheque/internal/validation"
	"github.com/cuihairu/ludotheque/services/catalog/internal/types"
)

type gameFields struct {
	Title       string
	Description string
	Released    string
	GenreId     string
	PublisherId string
	Featured    string
}

func createFields(req *types.GameCreateRequest) gameFields {
	return gameFields{req.Title, req.Description, req.Released, req.GenreId, req.PublisherId, req.Featured}
}

func updateFields(req *types.GameUpdateRequest) gameFields {
	return gameFields{req.Title, req.Description, req.Released, req.GenreId, req.PublisherId, req.Featured}
}

type gameInput struct {
	Title       string `validate:"required,max=200" label:"titre"`
	Description string `validate:"max=400" label:"description"`
}

// bindGame validates the submitted fields and copies them onto g.
func (l *GameLogic) bindGame(f gameFields, g *ports.Game) error {
	in := gameInput{
		Title:       validation.Normalize(f.Title),
		Description: validation.Normalize(f.Description),
	}
	if err := l.svcCtx.Validator.Struct(in); err != nil {
		return err
	}
	released, err := parseDate("date de sortie", f.Released)
	if err != nil {
		return err
	}
	genre, err := parseRef(l.ctx, "genre", f.GenreId, l.svcCtx.Genres.Exists)
	if err != nil {
		return err
	}
	publisher, err := parseRef(l.ctx, "éditeur", f.PublisherId, l.svcCtx.Publishers.Exists)
	if err != nil {
		return err
	}

	g.Title = in.Title
	g.Description = in.Description
	g.ReleasedOn = released
	g.GenreID = genre
	g.PublisherID = publisher
	g.Featured = parseFlag(f.Featured)
	return nil
}

// parseFlag accepts what an HTML checkbox or a hand-written form may send.
func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, validation.Invalid(field, "date", "le champ "+field+" doit être une date AAAA-MM-JJ")
	}
	return &t, nil
}

// parseRef turns a select box value into a Ref; empty means no reference.
func parseRef(ctx context.Context, field, raw string, exists func(context.Context, uint) (bool, error)) (ports.Ref, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ports.Ref{}, nil
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return ports.Ref{}, validation.Invalid(field, "id", "le champ "+field+" est invalide")
	}
	ok, err := exists(ctx, uint(id))
	if err != nil {
		return ports.Ref{}, err
	}
	if !ok {
		return ports.Ref{}, validation.Invalid(field, "exists", "le "+field+" sélectionné n'existe pas")
	}
	return ports.RefOf(uint(id)), nil
}
