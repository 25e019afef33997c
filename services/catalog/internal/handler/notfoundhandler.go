package handler

import (
	"net/http"

	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
)

// NotFoundHandler renders the 404 page for unmatched routes.
func NotFoundHandler(svcCtx *svc.ServiceContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render(w, r, svcCtx, http.StatusNotFound, "notfound", nil)
	})
}
