package handler

import (
	"net/http"

	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: HomeHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/jeux",
				Handler: GamesListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/jeux/new",
				Handler: GameNewHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/jeux",
				Handler: GameCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/jeux/:id",
				Handler: GameDetailHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/jeux/:id/edit",
				Handler: GameEditHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/jeux/:id/edit",
				Handler: GameUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/jeux/:id/delete",
				Handler: GameDeleteHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/jeux/:id/feature",
				Handler: GameFeatureHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/jeux/:id/unfeature",
				Handler: GameUnfeatureHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/genres",
				Handler: GenresListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/genres/:id",
				Handler: GenreDetailHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/editeurs",
				Handler: PublishersListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/editeurs/new",
				Handler: PublisherNewHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/editeurs",
				Handler: PublisherCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/editeurs/:id",
				Handler: PublisherDetailHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/editeurs/:id/edit",
				Handler: PublisherEditHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/editeurs/:id/edit",
				Handler: PublisherUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/editeurs/:id/delete",
				Handler: PublisherDeleteHandler(serverCtx),
			},
		},
	)
}
