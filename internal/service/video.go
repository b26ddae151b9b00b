package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/johnrjervis/juggling-vlog/internal/apperror"
	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/repository"
)

// MaxTitleLength bounds the video title; anything longer is an admin typo,
// not content.
const MaxTitleLength = 100

// VideoService handles the video collection: publication-gated reads for the
// site, unrestricted writes for the admin CLI.
type VideoService struct {
	repo   repository.VideoRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewVideoService creates a VideoService. The clock is injectable for tests;
// pass nil to use time.Now.
func NewVideoService(repo repository.VideoRepository, logger *slog.Logger, now func() time.Time) *VideoService {
	if now == nil {
		now = time.Now
	}
	return &VideoService{
		repo:   repo,
		logger: logger,
		now:    now,
	}
}

// Current returns the homepage video, or (nil, nil) when no video has been
// published yet — the caller renders the empty state, it is not an error.
func (s *VideoService) Current(ctx context.Context) (*model.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list videos", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading current video: %w", err)
	}

	current, ok := CurrentVideo(videos, s.now())
	if !ok {
		return nil, nil
	}
	return &current, nil
}

// Archive returns all published videos except the current one, newest first.
func (s *VideoService) Archive(ctx context.Context) ([]model.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list videos", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading archive: %w", err)
	}

	return ArchiveVideos(videos, s.now()), nil
}

// GetPublished returns the video with the given id, applying the publish
// gate: a missing video and a future-dated one are both NotFound. A video
// scheduled for tomorrow must be unaddressable today, not merely unlisted.
func (s *VideoService) GetPublished(ctx context.Context, id string) (*model.Video, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.NotFound("video", id)
	}

	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !video.Published(s.now()) {
		return nil, apperror.NotFound("video", id)
	}

	return video, nil
}

// List returns every video, future-dated ones included. Admin CLI only.
func (s *VideoService) List(ctx context.Context) ([]model.Video, error) {
	return s.repo.List(ctx)
}

// Create validates and saves a new video. A zero publishAt means "publish
// now" (the repository fills it in).
func (s *VideoService) Create(ctx context.Context, filename, title, authorNote string, publishAt time.Time) (*model.Video, error) {
	title = strings.TrimSpace(title)
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
	}

	video := &model.Video{
		Filename:   strings.TrimSpace(filename),
		Title:      title,
		AuthorNote: strings.TrimSpace(authorNote),
		PublishAt:  publishAt,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		s.logger.Error("failed to create video",
			slog.String("filename", video.Filename),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating video: %w", err)
	}

	s.logger.Info("video created",
		slog.String("id", video.ID),
		slog.String("filename", video.Filename),
		slog.Time("publish_at", video.PublishAt),
	)

	return video, nil
}

// Update edits a video's fields. Empty strings leave the existing value in
// place; a zero publishAt keeps the current schedule.
func (s *VideoService) Update(ctx context.Context, id, filename, title, authorNote string, publishAt time.Time) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if filename = strings.TrimSpace(filename); filename != "" {
		video.Filename = filename
	}
	if title = strings.TrimSpace(title); title != "" {
		if len(title) > MaxTitleLength {
			return nil, apperror.ValidationFailed("title",
				fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
		}
		video.Title = title
	}
	if authorNote = strings.TrimSpace(authorNote); authorNote != "" {
		video.AuthorNote = authorNote
	}
	if !publishAt.IsZero() {
		video.PublishAt = publishAt
	}

	if err := s.repo.Update(ctx, video); err != nil {
		s.logger.Error("failed to update video",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating video: %w", err)
	}

	s.logger.Info("video updated", slog.String("id", video.ID))
	return video, nil
}

// Delete removes a video. Its comments survive with a cleared video
// reference (the schema's ON DELETE SET NULL).
func (s *VideoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("video deleted", slog.String("id", id))
	return nil
}
