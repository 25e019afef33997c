package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/cuihairu/ludotheque/internal/ports"
	"github.com/cuihairu/ludotheque/internal/validation"
	"github.com/cuihairu/ludotheque/services/catalog/internal/logic"
	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// pageFunc loads the data for one page.
type pageFunc[Req any] func(ctx context.Context, svcCtx *svc.ServiceContext, req *Req) (any, error)

// redirectFunc performs a mutation and returns where to send the browser.
type redirectFunc[Req any] func(ctx context.Context, svcCtx *svc.ServiceContext, req *Req) (string, error)

// pageHandler parses Req, runs fn and renders the named view with its result.
func pageHandler[Req any](svcCtx *svc.ServiceContext, view string, fn pageFunc[Req]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := parse(r, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}
		data, err := fn(r.Context(), svcCtx, &req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}
		render(w, r, svcCtx, http.StatusOK, view, data)
	}
}

// redirectHandler parses Req, runs fn and answers 303 See Other on success.
func redirectHandler[Req any](svcCtx *svc.ServiceContext, fn redirectFunc[Req]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := parse(r, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}
		location, err := fn(r.Context(), svcCtx, &req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}
		http.Redirect(w, r, location, http.StatusSeeOther)
	}
}

var errBadForm = validation.Invalid("", "form", "formulaire invalide")

func parse(r *http.Request, v any) error {
	if err := httpx.ParsePath(r, v); err != nil {
		return ports.ErrNotFound
	}
	if err := httpx.ParseForm(r, v); err != nil {
		return errBadForm
	}
	return nil
}

// render buffers the page so a template failure still yields a clean 500.
func render(w http.ResponseWriter, r *http.Request, svcCtx *svc.ServiceContext, status int, view string, data any) {
	var buf bytes.Buffer
	if err := svcCtx.View.Render(&buf, view, data); err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeCatalogError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Message, http.StatusBadRequest)
	case errors.Is(err, ports.ErrNotFound):
		msg := "introuvable"
		var me *logic.MissingError
		if errors.As(err, &me) {
			msg = me.Error()
		}
		http.Error(w, msg, http.StatusNotFound)
	default:
		logx.WithContext(ctx).Errorf("catalog request failed: %v", err)
		http.Error(w, "erreur serveur", http.StatusInternalServerError)
	}
}
