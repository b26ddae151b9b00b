package handler

import (
	"log/slog"
	"net/http"

	"github.com/johnrjervis/juggling-vlog/internal/service"
)

// PageHandler serves the static informational pages. Only the Thanks page
// touches the database (it lists the acknowledgements).
type PageHandler struct {
	acks   *service.AcknowledgementService
	render *Renderer
	logger *slog.Logger
}

func NewPageHandler(acks *service.AcknowledgementService, render *Renderer, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		acks:   acks,
		render: render,
		logger: logger,
	}
}

// Static returns a handler for a page with no dynamic data beyond its title
// and nav highlight.
func (h *PageHandler) Static(page, title, selected string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render.Render(w, http.StatusOK, page, map[string]any{
			"Title":    title,
			"Selected": selected,
		})
	}
}

// HandleThanks serves GET /about/thanks/ with the acknowledgement list.
func (h *PageHandler) HandleThanks(w http.ResponseWriter, r *http.Request) {
	acks, err := h.acks.List(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, http.StatusOK, "thanks.html", map[string]any{
		"Title":            "Thanks",
		"Selected":         "About",
		"Acknowledgements": acks,
	})
}
