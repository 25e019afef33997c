package logic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cuihairu/ludotheque/internal/ports"
)

const (
	entityGame      = "jeu"
	entityGenre     = "genre"
	entityPublisher = "éditeur"
)

// MissingError is a not-found error naming the catalog entity. It matches ports.ErrNotFound.
type MissingError struct {
	Entity string
}

func (e *MissingError) Error() string { return e.Entity + " introuvable" }

func (e *MissingError) Is(target error) bool { return target == ports.ErrNotFound }

// missing names the entity on not-found errors and passes anything else through.
func missing(entity string, err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return &MissingError{Entity: entity}
	}
	return err
}

// parseID reads a path identifier. Anything that is not a positive integer cannot
// name a record, so it is reported as missing.
func parseID(entity, raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || id == 0 {
		return 0, &MissingError{Entity: entity}
	}
	return uint(id), nil
}
