package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/johnrjervis/juggling-vlog/internal/apperror"
	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/service"
)

// VideoHandler serves the homepage, the archive, the video detail pages, and
// the comment submission endpoint.
type VideoHandler struct {
	videos   *service.VideoService
	comments *service.CommentService
	render   *Renderer
	logger   *slog.Logger
}

func NewVideoHandler(videos *service.VideoService, comments *service.CommentService, render *Renderer, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{
		videos:   videos,
		comments: comments,
		render:   render,
		logger:   logger,
	}
}

// HandleHome serves GET /videos/ — the current video, or the empty state
// when nothing has been published yet.
func (h *VideoHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	current, err := h.videos.Current(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, http.StatusOK, "index.html", map[string]any{
		"Title":    "Juggling videos",
		"Selected": "Home",
		"Video":    current, // nil renders "No videos are available!"
	})
}

// HandleArchive serves GET /videos/list/ — every published video except the
// current one, newest first.
func (h *VideoHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	archive, err := h.videos.Archive(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, http.StatusOK, "videos.html", map[string]any{
		"Title":    "Videos",
		"Selected": "Videos",
		"Videos":   archive,
	})
}

// HandleDetail serves GET /videos/{id}/ — one video with its approved
// comments and the comment form. Missing and future-dated videos both 404.
func (h *VideoHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.videos.GetPublished(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to load video",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	comments, err := h.comments.Visible(r.Context(), video.ID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderDetail(w, http.StatusOK, video, comments, "", "", "")
}

// HandleAddComment serves POST /videos/{id}/comments. On success it
// redirects back to the detail page (303, the standard post-redirect-get);
// on a validation failure it re-renders the detail page with the error and
// the visitor's input preserved.
func (h *VideoHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	author := r.PostFormValue("author")
	text := r.PostFormValue("text")

	_, err := h.comments.Add(r.Context(), id, author, text)
	if err == nil {
		http.Redirect(w, r, "/videos/"+id+"/", http.StatusSeeOther)
		return
	}

	if errors.Is(err, apperror.ErrNotFound) {
		http.NotFound(w, r)
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && (errors.Is(err, apperror.ErrValidation) || errors.Is(err, apperror.ErrConflict)) {
		// Re-render the detail page with the error above the form. The
		// video is guaranteed published here — Add would have 404ed
		// otherwise.
		video, verr := h.videos.GetPublished(r.Context(), id)
		if verr != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		comments, cerr := h.comments.Visible(r.Context(), video.ID)
		if cerr != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		h.renderDetail(w, http.StatusOK, video, comments, appErr.Message, author, text)
		return
	}

	h.logger.Error("failed to add comment",
		slog.String("video_id", id),
		slog.String("error", err.Error()),
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (h *VideoHandler) renderDetail(w http.ResponseWriter, status int, video *model.Video, comments []model.Comment, commentError, author, text string) {
	h.render.Render(w, status, "detail.html", map[string]any{
		"Title":        video.Title,
		"Selected":     "Videos",
		"Video":        video,
		"Comments":     comments,
		"CommentError": commentError,
		"Author":       author,
		"Text":         text,
	})
}
