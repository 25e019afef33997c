package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/cuihairu/ludotheque/internal/ports"
	"github.com/cuihairu/ludotheque/internal/validation"
	"gopkg.in/yaml.v3"
)

// DefaultGenres is the built-in seed list, in insertion order.
var DefaultGenres = []string{
	"FPS", "RPG", "Roguelike", "Tactique", "Survie", "MMO", "Action-Aventure",
	"Aventure", "Simulation", "Sport", "MMORPG", "Action", "Horreur", "Sandbox",
	"Stratégie", "Puzzle", "Course", "Musical", "Indépendant", "VR", "Éducatif",
}

//go:embed genres.schema.json
var genresSchema []byte

type Service struct {
	genres ports.GenresRepository
	names  []string
}

// NewService seeds names, or DefaultGenres when names is empty.
func NewService(genres ports.GenresRepository, names []string) *Service {
	if len(names) == 0 {
		names = DefaultGenres
	}
	return &Service{genres: genres, names: names}
}

// Names returns the seed list in use.
func (s *Service) Names() []string { return s.names }

// Seed ensures one genre per seed name exists and returns how many were created.
// Existing rows are never updated.
func (s *Service) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, name := range s.names {
		ok, err := s.genres.EnsureNamed(ctx, validation.Normalize(name))
		if err != nil {
			return created, fmt.Errorf("seed genre %q: %w", name, err)
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// LoadSeedFile parses a YAML document `{genres: [..]}` and checks it against the embedded schema.
func LoadSeedFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validation.ValidateDocument(genresSchema, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	raw, _ := doc["genres"].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.(string))
	}
	return out, nil
}
