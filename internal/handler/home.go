package handler

import (
	"net/http"
	"strings"

	"github.com/weekwise/weekwise/internal/service"
	"github.com/weekwise/weekwise/internal/ui"
	"github.com/weekwise/weekwise/internal/ui/pages"
)

type homeHandler struct {
	contentService *service.ContentService
}

func NewHomeHandler(contentService *service.ContentService) *homeHandler {
	return &homeHandler{contentService: contentService}
}

func (h *homeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Home())
}

// ContentPage serves static markdown pages like /about. The slug is the
// path itself, so one handler covers every registered page route.
func (h *homeHandler) ContentPage(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/")

	page, ok := h.contentService.Page(slug)
	if !ok {
		h.NotFound(w, r)
		return
	}

	ui.Render(w, r, pages.Content(page))
}

func (h *homeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, pages.NotFound())
}
