package types

import "github.com/cuihairu/ludotheque/internal/ports"

type (
	EmptyRequest struct{}

	IdRequest struct {
		Id string `path:"id"`
	}

	GameCreateRequest struct {
		Title       string `form:"title,optional"`
		Description string `form:"description,optional"`
		Released    string `form:"released,optional"`
		GenreId     string `form:"typeId,optional"`
		PublisherId string `form:"editorId,optional"`
		Featured    string `form:"highlight,optional"`
	}

	GameUpdateRequest struct {
		Id          string `path:"id"`
		Title       string `form:"title,optional"`
		Description string `form:"description,optional"`
		Released    string `form:"released,optional"`
		GenreId     string `form:"typeId,optional"`
		PublisherId string `form:"editorId,optional"`
		Featured    string `form:"highlight,optional"`
	}

	PublisherCreateRequest struct {
		Name string `form:"name,optional"`
	}

	PublisherUpdateRequest struct {
		Id   string `path:"id"`
		Name string `form:"name,optional"`
	}
)

type (
	HomePage struct {
		Games []*ports.Game
	}

	GamesPage struct {
		Games []*ports.Game
	}

	GamePage struct {
		Game *ports.Game
	}

	GameFormPage struct {
		Action     string
		Game       *ports.Game
		Genres     []*ports.Genre
		Publishers []*ports.Publisher
	}

	GenresPage struct {
		Genres []*ports.Genre
	}

	GenrePage struct {
		Genre *ports.Genre
	}

	PublishersPage struct {
		Publishers []*ports.Publisher
	}

	PublisherPage struct {
		Publisher *ports.Publisher
	}

	PublisherFormPage struct {
		Action    string
		Publisher *ports.Publisher
	}
)
