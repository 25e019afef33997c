package handler

import (
	"context"
	"net/http"

	"github.com/cuihairu/ludotheque/services/catalog/internal/logic"
	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/cuihairu/ludotheque/services/catalog/internal/types"
)

func PublishersListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "publishers/index", func(ctx context.Context, s *svc.ServiceContext, _ *types.EmptyRequest) (any, error) {
		return logic.NewPublisherLogic(ctx, s).List()
	})
}

func PublisherNewHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "publishers/new", func(ctx context.Context, s *svc.ServiceContext, _ *types.EmptyRequest) (any, error) {
		return logic.NewPublisherLogic(ctx, s).NewForm()
	})
}

func PublisherDetailHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "publishers/show", func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (any, error) {
		return logic.NewPublisherLogic(ctx, s).Get(req)
	})
}

func PublisherEditHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return pageHandler(svcCtx, "publishers/edit", func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (any, error) {
		return logic.NewPublisherLogic(ctx, s).EditForm(req)
	})
}

func PublisherCreateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.PublisherCreateRequest) (string, error) {
		return logic.NewPublisherLogic(ctx, s).Create(req)
	})
}

func PublisherUpdateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.PublisherUpdateRequest) (string, error) {
		return logic.NewPublisherLogic(ctx, s).Update(req)
	})
}

func PublisherDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return redirectHandler(svcCtx, func(ctx context.Context, s *svc.ServiceContext, req *types.IdRequest) (string, error) {
		return logic.NewPublisherLogic(ctx, s).Delete(req)
	})
}
