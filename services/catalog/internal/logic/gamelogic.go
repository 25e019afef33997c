package logic

import (
	"context"
	"fmt"

	"github.com/cuihairu/ludotheque/internal/ports"
	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/cuihairu/ludotheque/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

const gamesPath = "/jeux"

type GameLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameLogic {
	return &GameLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func gamePath(id uint) string { return fmt.Sprintf("%s/%d", gamesPath, id) }

// Featured lists the games shown on the landing page.
func (l *GameLogic) Featured() (*types.HomePage, error) {
	games, err := l.svcCtx.Games.List(l.ctx, ports.GameFilter{FeaturedOnly: true})
	if err != nil {
		return nil, err
	}
	return &types.HomePage{Games: games}, nil
}

func (l *GameLogic) List() (*types.GamesPage, error) {
	games, err := l.svcCtx.Games.List(l.ctx, ports.GameFilter{})
	if err != nil {
		return nil, err
	}
	return &types.GamesPage{Games: games}, nil
}

func (l *GameLogic) Get(req *types.IdRequest) (*types.GamePage, error) {
	g, err := l.load(req.Id)
	if err != nil {
		return nil, err
	}
	return &types.GamePage{Game: g}, nil
}

func (l *GameLogic) NewForm() (*types.GameFormPage, error) {
	return l.form(gamesPath, &ports.Game{})
}

func (l *GameLogic) EditForm(req *types.IdRequest) (*types.GameFormPage, error) {
	g, err := l.load(req.Id)
	if err != nil {
		return nil, err
	}
	return l.form(gamePath(g.ID)+"/edit", g)
}

func (l *GameLogic) Create(req *types.GameCreateRequest) (string, error) {
	var g ports.Game
	if err := l.bindGame(createFields(req), &g); err != nil {
		return "", err
	}
	if err := l.svcCtx.Games.Create(l.ctx, &g); err != nil {
		return "", err
	}
	l.svcCtx.Metrics.Record(l.ctx, "game", "create", 1)
	l.Infof("game %d created: %q", g.ID, g.Title)
	return gamesPath, nil
}

func (l *GameLogic) Update(req *types.GameUpdateRequest) (string, error) {
	id, err := parseID(entityGame, req.Id)
	if err != nil {
		return "", err
	}
	g := ports.Game{ID: id}
	if err := l.bindGame(updateFields(req), &g); err != nil {
		return "", err
	}
	if err := l.svcCtx.Games.Update(l.ctx, &g); err != nil {
		return "", missing(entityGame, err)
	}
	l.svcCtx.Metrics.Record(l.ctx, "game", "update", 1)
	return gamePath(id), nil
}

func (l *GameLogic) Delete(req *types.IdRequest) (string, error) {
	id, err := parseID(entityGame, req.Id)
	if err != nil {
		return "", err
	}
	if err := l.svcCtx.Games.Delete(l.ctx, id); err != nil {
		return "", missing(entityGame, err)
	}
	l.svcCtx.Metrics.Record(l.ctx, "game", "delete", 1)
	l.Infof("game %d deleted", id)
	return gamesPath, nil
}

func (l *GameLogic) Feature(req *types.IdRequest) (string, error) {
	return l.setFeatured(req.Id, true)
}

func (l *GameLogic) Unfeature(req *types.IdRequest) (string, error) {
	return l.setFeatured(req.Id, false)
}

func (l *GameLogic) setFeatured(raw string, featured bool) (string, error) {
	id, err := parseID(entityGame, raw)
	if err != nil {
		return "", err
	}
	if err := l.svcCtx.Games.SetFeatured(l.ctx, id, featured); err != nil {
		return "", missing(entityGame, err)
	}
	op := "unfeature"
	if featured {
		op = "feature"
	}
	l.svcCtx.Metrics.Record(l.ctx, "game", op, 1)
	return gamePath(id), nil
}

func (l *GameLogic) load(raw string) (*ports.Game, error) {
	id, err := parseID(entityGame, raw)
	if err != nil {
		return nil, err
	}
	g, err := l.svcCtx.Games.Get(l.ctx, id)
	if err != nil {
		return nil, missing(entityGame, err)
	}
	return g, nil
}

func (l *GameLogic) form(action string, g *ports.Game) (*types.GameFormPage, error) {
	genres, err := l.svcCtx.Genres.List(l.ctx)
	if err != nil {
		return nil, err
	}
	publishers, err := l.svcCtx.Publishers.List(l.ctx)
	if err != nil {
		return nil, err
	}
	return &types.GameFormPage{Action: action, Game: g, Genres: genres, Publishers: publishers}, nil
}
