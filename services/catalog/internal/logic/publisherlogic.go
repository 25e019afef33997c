package logic

import (
	"context"
	"fmt"

	"github.com/cuihairu/ludotheque/internal/ports"
	"github.com/cuihairu/ludotheque/internal/validation"
	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/cuihairu/ludotheque/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

const publishersPath = "/editeurs"

type PublisherLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPublisherLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PublisherLogic {
	return &PublisherLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

type publisherInput struct {
	Name string `validate:"required,max=150" label:"nom"`
}

func (l *PublisherLogic) bind(name string) (string, error) {
	in := publisherInput{Name: validation.Normalize(name)}
	if err := l.svcCtx.Validator.Struct(in); err != nil {
		return "", err
	}
	return in.Name, nil
}

func (l *PublisherLogic) List() (*types.PublishersPage, error) {
	publishers, err := l.svcCtx.Publishers.List(l.ctx)
	if err != nil {
		return nil, err
	}
	return &types.PublishersPage{Publishers: publishers}, nil
}

func (l *PublisherLogic) Get(req *types.IdRequest) (*types.PublisherPage, error) {
	p, err := l.load(req.Id)
	if err != nil {
		return nil, err
	}
	return &types.PublisherPage{Publisher: p}, nil
}

func (l *PublisherLogic) NewForm() (*types.PublisherFormPage, error) {
	return &types.PublisherFormPage{Action: publishersPath, Publisher: &ports.Publisher{}}, nil
}

func (l *PublisherLogic) EditForm(req *types.IdRequest) (*types.PublisherFormPage, error) {
	p, err := l.load(req.Id)
	if err != nil {
		return nil, err
	}
	return &types.PublisherFormPage{Action: fmt.Sprintf("%s/%d/edit", publishersPath, p.ID), Publisher: p}, nil
}

func (l *PublisherLogic) Create(req *types.PublisherCreateRequest) (string, error) {
	name, err := l.bind(req.Name)
	if err != nil {
		return "", err
	}
	p := ports.Publisher{Name: name}
	if err := l.svcCtx.Publishers.Create(l.ctx, &p); err != nil {
		return "", err
	}
	l.svcCtx.Metrics.Record(l.ctx, "publisher", "create", 1)
	l.Infof("publisher %d created: %q", p.ID, p.Name)
	return publishersPath, nil
}

func (l *PublisherLogic) Update(req *types.PublisherUpdateRequest) (string, error) {
	id, err := parseID(entityPublisher, req.Id)
	if err != nil {
		return "", err
	}
	name, err := l.bind(req.Name)
	if err != nil {
		return "", err
	}
	if err := l.svcCtx.Publishers.Update(l.ctx, &ports.Publisher{ID: id, Name: name}); err != nil {
		return "", missing(entityPublisher, err)
	}
	l.svcCtx.Metrics.Record(l.ctx, "publisher", "update", 1)
	return fmt.Sprintf("%s/%d", publishersPath, id), nil
}

// Delete removes the publisher; its games stay in the catalog without one.
func (l *PublisherLogic) Delete(req *types.IdRequest) (string, error) {
	id, err := parseID(entityPublisher, req.Id)
	if err != nil {
		return "", err
	}
	if err := l.svcCtx.Publishers.Delete(l.ctx, id); err != nil {
		return "", missing(entityPublisher, err)
	}
	l.svcCtx.Metrics.Record(l.ctx, "publisher", "delete", 1)
	l.Infof("publisher %d deleted", id)
	return publishersPath, nil
}

func (l *PublisherLogic) load(raw string) (*ports.Publisher, error) {
	id, err := parseID(entityPublisher, raw)
	if err != nil {
		return nil, err
	}
	p, err := l.svcCtx.Publishers.Get(l.ctx, id)
	if err != nil {
		return nil, missing(entityPublisher, err)
	}
	return p, nil
}
