// Package handler contains the HTTP request handlers for the site.
//
// Handlers are the glue between HTTP and the service layer: they parse
// requests, call services, and render templates. Business rules (publication
// gating, comment validation) never live here.
package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"
)

// Template funcs shared by every page. The two date formats are the ones the
// site has always rendered: publish dates as "2006/01/02 at 15:04" and
// comment dates as "02/01/2006 at 15:04".
var templateFuncs = template.FuncMap{
	"publishDate": func(t time.Time) string {
		return t.Format("2006/01/02 at 15:04")
	},
	"commentDate": func(t time.Time) string {
		return t.Format("02/01/2006 at 15:04")
	},
}

// pageFiles lists every content template. Each one pairs with base.html to
// form a complete page; parsing them once at startup means a broken template
// fails the server at boot instead of on first request.
var pageFiles = []string{
	"index.html",
	"videos.html",
	"detail.html",
	"about.html",
	"thanks.html",
	"history.html",
	"learn.html",
	"contact.html",
	"programming.html",
	"web_development.html",
}

// Renderer holds the parsed template sets, one per page.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewRenderer parses base.html together with each page template.
func NewRenderer(templateDir string, logger *slog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	base := filepath.Join(templateDir, "base.html")

	for _, page := range pageFiles {
		tmpl, err := template.New("base.html").Funcs(templateFuncs).ParseFiles(
			base,
			filepath.Join(templateDir, page),
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Renderer{
		pages:  pages,
		logger: logger,
	}, nil
}

// Render executes the named page with the given data. Headers and status go
// out before the body, so a template failure mid-write can only be logged.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data map[string]any) {
	tmpl, ok := rn.pages[page]
	if !ok {
		rn.logger.Error("unknown template requested", slog.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		rn.logger.Error("failed to render template",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
	}
}
