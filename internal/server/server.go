// Package server wires the router, handlers, and database together and owns
// the HTTP server lifecycle.
//
// This is the composition root: main.go hands over a Config, and the
// database, services, handlers, and routes are all assembled here in one
// place rather than scattered across the codebase.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/johnrjervis/juggling-vlog/internal/config"
	"github.com/johnrjervis/juggling-vlog/internal/handler"
	"github.com/johnrjervis/juggling-vlog/internal/mail"
	"github.com/johnrjervis/juggling-vlog/internal/middleware"
	sqliteRepo "github.com/johnrjervis/juggling-vlog/internal/repository/sqlite"
	"github.com/johnrjervis/juggling-vlog/internal/service"
)

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown so the WAL is flushed and the file lock
// released.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain:
// DB → repositories → services → handlers → routes.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// GET  /                      → redirect to /videos/
// GET  /videos/               → home (current video)
// GET  /videos/list/          → archive
// GET  /videos/{id}/          → detail + comment form (404 when unpublished)
// POST /videos/{id}/comments  → comment submission
// GET  /about/, /about/thanks/, /about/history/, /learn/,
//      /dev/programming/, /dev/web-development/ → informational pages
// GET  /contact/  POST /contact/ → contact form
// GET  /static/*              → static assets (CSS, video files)
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	fileServer := http.FileServer(http.Dir(s.config.Server.StaticDir))
	s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	render, err := handler.NewRenderer(s.config.Server.TemplateDir, s.logger)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	// Services share the injected wall clock (nil → time.Now).
	videoService := service.NewVideoService(s.db.Videos(), s.logger, nil)
	commentService := service.NewCommentService(s.db.Comments(), s.db.Videos(), s.logger, nil)
	ackService := service.NewAcknowledgementService(s.db.Acknowledgements(), s.logger)

	var mailer mail.Mailer
	if s.config.MailEnabled() {
		mailer = mail.NewSMTPMailer(
			s.config.SMTP.Host,
			s.config.SMTP.Port,
			s.config.SMTP.Username,
			s.config.SMTP.Password,
			s.config.SMTP.From,
			s.config.SMTP.To,
		)
	} else {
		s.logger.Warn("smtp.host not configured; contact messages will be logged, not sent")
		mailer = mail.NewLogMailer(s.logger)
	}

	videoHandler := handler.NewVideoHandler(videoService, commentService, render, s.logger)
	pageHandler := handler.NewPageHandler(ackService, render, s.logger)
	contactHandler := handler.NewContactHandler(mailer, render, s.logger)

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/videos/", http.StatusFound)
	})

	s.router.Route("/videos", func(r chi.Router) {
		r.Get("/", videoHandler.HandleHome)
		r.Get("/list/", videoHandler.HandleArchive)
		r.Get("/{id}/", videoHandler.HandleDetail)
		r.Post("/{id}/comments", videoHandler.HandleAddComment)
	})

	s.router.Route("/about", func(r chi.Router) {
		r.Get("/", pageHandler.Static("about.html", "About", "About"))
		r.Get("/thanks/", pageHandler.HandleThanks)
		r.Get("/history/", pageHandler.Static("history.html", "History", "About"))
	})

	s.router.Get("/learn/", pageHandler.Static("learn.html", "Learn", "Learn"))

	s.router.Route("/contact", func(r chi.Router) {
		r.Get("/", contactHandler.HandleForm)
		r.Post("/", contactHandler.HandleSubmit)
	})

	s.router.Route("/dev", func(r chi.Router) {
		r.Get("/programming/", pageHandler.Static("programming.html", "Programming", ""))
		r.Get("/web-development/", pageHandler.Static("web_development.html", "Web development", ""))
	})

	return nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30s and closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Server.Port),
			slog.String("database", s.config.Database.Path),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
