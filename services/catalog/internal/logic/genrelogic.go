package logic

import (
	"context"

	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/cuihairu/ludotheque/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// GenreLogic is read-only: genres are only written by seeding.
type GenreLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenreLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenreLogic {
	return &GenreLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GenreLogic) List() (*types.GenresPage, error) {
	genres, err := l.svcCtx.Genres.List(l.ctx)
	if err != nil {
		return nil, err
	}
	return &types.GenresPage{Genres: genres}, nil
}

func (l *GenreLogic) Get(req *types.IdRequest) (*types.GenrePage, error) {
	id, err := parseID(entityGenre, req.Id)
	if err != nil {
		return nil, err
	}
	g, err := l.svcCtx.Genres.Get(l.ctx, id)
	if err != nil {
		return nil, missing(entityGenre, err)
	}
	return &types.GenrePage{Genre: g}, nil
}
