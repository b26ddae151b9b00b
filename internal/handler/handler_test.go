package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/repository/sqlite"
	"github.com/johnrjervis/juggling-vlog/internal/service"
)

// These tests exercise the handlers end to end: real templates, real
// services, a throwaway in-memory database. Only the mailer is faked.

var testNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

// mockMailer records sends and can be told to fail.
type mockMailer struct {
	sends []sentMessage
	err   error
}

type sentMessage struct {
	name    string
	replyTo string
	message string
}

func (m *mockMailer) Send(name, replyTo, message string) error {
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, sentMessage{name: name, replyTo: replyTo, message: message})
	return nil
}

// testEnv bundles everything a handler test needs: a routed handler stack
// over a fresh database, plus direct service access for seeding fixtures.
type testEnv struct {
	router   chi.Router
	db       *sqlite.DB
	videos   *service.VideoService
	comments *service.CommentService
	acks     *service.AcknowledgementService
	mailer   *mockMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clock := func() time.Time { return testNow }
	videos := service.NewVideoService(db.Videos(), logger, clock)
	comments := service.NewCommentService(db.Comments(), db.Videos(), logger, clock)
	acks := service.NewAcknowledgementService(db.Acknowledgements(), logger)

	render, err := NewRenderer("../../web/templates", logger)
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	mailer := &mockMailer{}

	videoHandler := NewVideoHandler(videos, comments, render, logger)
	pageHandler := NewPageHandler(acks, render, logger)
	contactHandler := NewContactHandler(mailer, render, logger)

	router := chi.NewRouter()
	router.Route("/videos", func(r chi.Router) {
		r.Get("/", videoHandler.HandleHome)
		r.Get("/list/", videoHandler.HandleArchive)
		r.Get("/{id}/", videoHandler.HandleDetail)
		r.Post("/{id}/comments", videoHandler.HandleAddComment)
	})
	router.Get("/about/thanks/", pageHandler.HandleThanks)
	router.Get("/learn/", pageHandler.Static("learn.html", "Learn", "Learn"))
	router.Get("/contact/", contactHandler.HandleForm)
	router.Post("/contact/", contactHandler.HandleSubmit)

	return &testEnv{
		router:   router,
		db:       db,
		videos:   videos,
		comments: comments,
		acks:     acks,
		mailer:   mailer,
	}
}

// get performs a GET against the test router and returns the recorder.
func (env *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	return rec
}

// seedVideo creates a video with the given publish time, relative to testNow.
func (env *testEnv) seedVideo(t *testing.T, title string, publishAt time.Time) *model.Video {
	t.Helper()

	video, err := env.videos.Create(context.Background(), title+".mp4", title, "", publishAt)
	if err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}

	return video
}

var errSMTPDown = errors.New("dial tcp: connection refused")
