// Package repository defines the persistence interfaces consumed by the
// service layer. The concrete SQLite implementation lives in
// repository/sqlite; services only ever see these interfaces, which is what
// lets the tests substitute in-memory fakes.
package repository

import (
	"context"

	"github.com/johnrjervis/juggling-vlog/internal/model"
)

// VideoRepository stores the video collection.
//
// List returns every video — including future-dated ones — ordered by
// publish time, newest first. Publication gating is the service layer's job
// (it needs an injected clock); the store just hands back ordered rows.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id string) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	Update(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository stores visitor comments.
//
// ListByVideo returns a video's comments in creation order (oldest first) —
// the detail page relies on that order. ListAll exists for the admin CLI and
// includes comments orphaned by video deletion.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByVideo(ctx context.Context, videoID string) ([]model.Comment, error)
	ListAll(ctx context.Context) ([]model.Comment, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}

// AcknowledgementRepository stores the Thanks-page entries.
type AcknowledgementRepository interface {
	Create(ctx context.Context, ack *model.Acknowledgement) error
	List(ctx context.Context) ([]model.Acknowledgement, error)
	Delete(ctx context.Context, id string) error
}
