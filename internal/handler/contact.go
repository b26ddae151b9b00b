package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/johnrjervis/juggling-vlog/internal/mail"
)

// Flash messages for the contact form. The outcome travels in the `sent`
// query parameter across the post-redirect-get hop, so a refresh of the
// landing page cannot resubmit the form.
const (
	contactSuccessMessage = "Thanks for your message! I will get back to you as soon as I can."
	contactEmptyMessage   = "Your message was empty, so it has not been sent."
	contactFailedMessage  = "Sorry, your message could not be sent. Please try again later."
)

// ContactHandler serves the contact form and dispatches submissions to the
// site owner by email.
type ContactHandler struct {
	mailer mail.Mailer
	render *Renderer
	logger *slog.Logger
}

func NewContactHandler(mailer mail.Mailer, render *Renderer, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		mailer: mailer,
		render: render,
		logger: logger,
	}
}

// HandleForm serves GET /contact/.
func (h *ContactHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	var flash, flashClass string
	switch r.URL.Query().Get("sent") {
	case "1":
		flash, flashClass = contactSuccessMessage, "success"
	case "0":
		flash, flashClass = contactEmptyMessage, "warning"
	case "err":
		flash, flashClass = contactFailedMessage, "warning"
	}

	h.render.Render(w, http.StatusOK, "contact.html", map[string]any{
		"Title":      "Contact",
		"Selected":   "Contact",
		"Flash":      flash,
		"FlashClass": flashClass,
	})
}

// HandleSubmit serves POST /contact/. An empty message is not an error: no
// mail goes out and the redirect carries a warning flash instead. Everything
// else sends exactly one email containing the sender's name and message.
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	if message == "" {
		http.Redirect(w, r, "/contact/?sent=0", http.StatusSeeOther)
		return
	}

	if err := h.mailer.Send(name, email, message); err != nil {
		h.logger.Error("failed to send contact message", slog.String("error", err.Error()))
		http.Redirect(w, r, "/contact/?sent=err", http.StatusSeeOther)
		return
	}

	h.logger.Info("contact message sent", slog.String("name", name))
	http.Redirect(w, r, "/contact/?sent=1", http.StatusSeeOther)
}
