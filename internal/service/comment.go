package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/johnrjervis/juggling-vlog/internal/apperror"
	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/repository"
)

// ValidateComment is the moderation gate's validation rule. It trims the
// text, normalizes a blank author to "anonymous", and checks the submission
// against the video's existing comments for an identical (author, text)
// pair. Pure function — persistence is the caller's job.
func ValidateComment(text, author string, existing []model.Comment) (normAuthor, normText string, err error) {
	normText = strings.TrimSpace(text)
	if normText == "" {
		return "", "", apperror.EmptyComment()
	}

	normAuthor = strings.TrimSpace(author)
	if normAuthor == "" {
		normAuthor = model.AnonymousAuthor
	}

	for _, c := range existing {
		if c.Author == normAuthor && c.Text == normText {
			return "", "", apperror.DuplicateComment()
		}
	}

	return normAuthor, normText, nil
}

// VisibleComments filters a video's comments down to the approved ones,
// preserving creation order. The detail page depends on that order: the
// oldest comment renders first and an empty result triggers the
// "be the first to comment" invitation.
func VisibleComments(comments []model.Comment) []model.Comment {
	visible := make([]model.Comment, 0, len(comments))
	for _, c := range comments {
		if c.IsApproved {
			visible = append(visible, c)
		}
	}
	return visible
}

// CommentService orchestrates comment submission and moderation.
type CommentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewCommentService creates a CommentService. Pass nil for the clock to use
// time.Now.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository, logger *slog.Logger, now func() time.Time) *CommentService {
	if now == nil {
		now = time.Now
	}
	return &CommentService{
		comments: comments,
		videos:   videos,
		logger:   logger,
		now:      now,
	}
}

// Add handles one visitor submission against one video:
//
//  1. Look up the video; missing or not-yet-published is NotFound — visitors
//     must not be able to comment on (or probe for) scheduled videos.
//  2. Run the moderation gate's validation against the video's existing
//     comments.
//  3. Persist with is_approved = true (moderation is opt-out).
//
// Exactly one comment row is created on success and none on any failure.
func (s *CommentService) Add(ctx context.Context, videoID, author, text string) (*model.Comment, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.Published(s.now()) {
		return nil, apperror.NotFound("video", videoID)
	}

	existing, err := s.comments.ListByVideo(ctx, video.ID)
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.String("video_id", video.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	normAuthor, normText, err := ValidateComment(text, author, existing)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		VideoID:    video.ID,
		Author:     normAuthor,
		Text:       normText,
		PostedAt:   s.now(),
		IsApproved: true,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		// The unique index can still reject a duplicate that raced past
		// ValidateComment; that comes back as the normal duplicate error.
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		s.logger.Error("failed to create comment",
			slog.String("video_id", video.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	s.logger.Info("comment added",
		slog.String("id", comment.ID),
		slog.String("video_id", video.ID),
		slog.String("author", comment.Author),
	)

	return comment, nil
}

// Visible returns the approved comments for a video, oldest first.
func (s *CommentService) Visible(ctx context.Context, videoID string) ([]model.Comment, error) {
	comments, err := s.comments.ListByVideo(ctx, videoID)
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.String("video_id", videoID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return VisibleComments(comments), nil
}

// ListAll returns every comment in the store, orphans included. Admin CLI
// only.
func (s *CommentService) ListAll(ctx context.Context) ([]model.Comment, error) {
	return s.comments.ListAll(ctx)
}

// SetApproved flips a comment's moderation flag.
func (s *CommentService) SetApproved(ctx context.Context, id string, approved bool) error {
	if err := s.comments.SetApproved(ctx, id, approved); err != nil {
		return err
	}

	s.logger.Info("comment moderation updated",
		slog.String("id", id),
		slog.Bool("approved", approved),
	)
	return nil
}

// Delete removes a comment entirely.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment deleted", slog.String("id", id))
	return nil
}
