package handler

import (
	"context"
	"net/http"

	"github.com/cuihairu/ludotheque/services/catalog/internal/logic"
	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/cuihairu/ludotheque/services/catalog/internal/types"
)

func GenresListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "genres/index", func(ctx context.Context, s *svc.ServiceContext, _ *types.EmptyRequest) (any, error) {
		return logic.NewGenreLogic(ctx, s).List()
	})
}

func GenreDetailHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "genres/show", func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (any, error) {
		return logic.NewGenreLogic(ctx, s).Get(req)
	})
}
