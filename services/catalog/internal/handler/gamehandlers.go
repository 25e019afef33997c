package handler

import (
	"context"
	"net/http"

	"github.com/cuihairu/ludotheque/services/catalog/internal/logic"
	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/cuihairu/ludotheque/services/catalog/internal/types"
)

func HomeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "home", func(ctx context.Context, s *svc.ServiceContext, _ *types.EmptyRequest) (any, error) {
		return logic.NewGameLogic(ctx, s).Featured()
	})
}

func GamesListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "games/index", func(ctx context.Context, s *svc.ServiceContext, _ *types.EmptyRequest) (any, error) {
		return logic.NewGameLogic(ctx, s).List()
	})
}

func GameNewHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "games/new", func(ctx context.Context, s *svc.ServiceContext, _ *types.EmptyRequest) (any, error) {
		return logic.NewGameLogic(ctx, s).NewForm()
	})
}

func GameDetailHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "games/show", func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (any, error) {
		return logic.NewGameLogic(ctx, s).Get(req)
	})
}

func GameEditHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "games/edit", func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (any, error) {
		return logic.NewGameLogic(ctx, s).EditForm(req)
	})
}

func GameCreateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.GameCreateRequest) (string, error) {
		return logic.NewGameLogic(ctx, s).Create(req)
	})
}

func GameUpdateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.GameUpdateRequest) (string, error) {
		return logic.NewGameLogic(ctx, s).Update(req)
	})
}

func GameDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (string, error) {
		return logic.NewGameLogic(ctx, s).Delete(req)
	})
}

func GameFeatureHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (string, error) {
		return logic.NewGameLogic(ctx, s).Feature(req)
	})
}

func GameUnfeatureHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (string, error) {
		return logic.NewGameLogic(ctx, s).Unfeature(req)
	})
}
