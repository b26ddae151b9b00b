package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/johnrjervis/juggling-vlog/internal/apperror"
	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implements repository.CommentRepository.
type CommentRepo struct {
	conn *sql.DB
}

// Create inserts a new comment. A UNIQUE(video_id, author, text) violation is
// translated to the duplicate-comment error — this is the backstop for two
// identical submissions racing past the service-level duplicate check.
func (r *CommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	comment.ID = xid.New().String()
	if comment.PostedAt.IsZero() {
		comment.PostedAt = time.Now()
	}

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO comments (id, video_id, author, text, posted_at, is_approved)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		comment.ID,
		nullableID(comment.VideoID),
		comment.Author,
		comment.Text,
		comment.PostedAt,
		comment.IsApproved,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperror.DuplicateComment()
		}
		return fmt.Errorf("sqlite: creating comment: %w", err)
	}

	return nil
}

// ListByVideo returns a video's comments in creation order (oldest first).
// xid values sort by creation time, so ordering on the primary key keeps
// same-second comments in insertion order where posted_at alone could not.
func (r *CommentRepo) ListByVideo(ctx context.Context, videoID string) ([]model.Comment, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, video_id, author, text, posted_at, is_approved
		 FROM comments
		 WHERE video_id = ?
		 ORDER BY id ASC`,
		videoID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments for video %s: %w", videoID, err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// ListAll returns every comment, including those orphaned by video deletion.
// Used by the admin CLI only.
func (r *CommentRepo) ListAll(ctx context.Context) ([]model.Comment, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, video_id, author, text, posted_at, is_approved
		 FROM comments
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// SetApproved toggles a comment's moderation flag.
func (r *CommentRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	result, err := r.conn.ExecContext(ctx,
		`UPDATE comments SET is_approved = ? WHERE id = ?`,
		approved, id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: setting approval on comment %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("comment", id)
	}

	return nil
}

// Delete removes a comment.
func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx,
		`DELETE FROM comments WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting comment %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("comment", id)
	}

	return nil
}

func scanComments(rows *sql.Rows) ([]model.Comment, error) {
	var comments []model.Comment
	for rows.Next() {
		var (
			c       model.Comment
			videoID sql.NullString
		)
		if err := rows.Scan(
			&c.ID, &videoID, &c.Author, &c.Text, &c.PostedAt, &c.IsApproved,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment row: %w", err)
		}
		c.VideoID = videoID.String // "" when the owning video was deleted
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comments: %w", err)
	}

	return comments, nil
}

// nullableID converts an empty string to a SQL NULL so the foreign key
// constraint is not checked against a nonexistent "" video.
func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}
