package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/johnrjervis/juggling-vlog/internal/apperror"
	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/repository"
)

// Compile-time check that the repo satisfies the interface.
var _ repository.VideoRepository = (*VideoRepo)(nil)

// VideoRepo implements repository.VideoRepository.
type VideoRepo struct {
	conn *sql.DB
}

// Create inserts a new video. The ID and timestamps are assigned here;
// a zero PublishAt defaults to the creation time, matching the record's
// "publish immediately unless scheduled" semantics.
func (r *VideoRepo) Create(ctx context.Context, video *model.Video) error {
	video.ID = xid.New().String()

	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
	if video.PublishAt.IsZero() {
		video.PublishAt = now
	}

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO videos (id, filename, title, publish_at, author_note, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		video.ID,
		video.Filename,
		video.Title,
		video.PublishAt,
		video.AuthorNote,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating video: %w", err)
	}

	return nil
}

// GetByID retrieves a single video by its ID. sql.ErrNoRows is translated to
// the domain NotFound error so handlers can map it to a 404.
func (r *VideoRepo) GetByID(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, filename, title, publish_at, author_note, created_at, updated_at
		 FROM videos
		 WHERE id = ?`,
		id,
	).Scan(
		&video.ID,
		&video.Filename,
		&video.Title,
		&video.PublishAt,
		&video.AuthorNote,
		&video.CreatedAt,
		&video.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("video", id)
		}
		return nil, fmt.Errorf("sqlite: getting video %s: %w", id, err)
	}

	return &video, nil
}

// List returns all videos ordered by publish time, newest first. The whole
// collection is a personal vlog's worth of rows, so no pagination.
func (r *VideoRepo) List(ctx context.Context) ([]model.Video, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, filename, title, publish_at, author_note, created_at, updated_at
		 FROM videos
		 ORDER BY publish_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing videos: %w", err)
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(
			&v.ID, &v.Filename, &v.Title, &v.PublishAt, &v.AuthorNote,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning video row: %w", err)
		}
		videos = append(videos, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating videos: %w", err)
	}

	return videos, nil
}

// Update modifies an existing video's editable fields. ID and created_at are
// immutable.
func (r *VideoRepo) Update(ctx context.Context, video *model.Video) error {
	video.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE videos
		 SET filename = ?, title = ?, publish_at = ?, author_note = ?, updated_at = ?
		 WHERE id = ?`,
		video.Filename,
		video.Title,
		video.PublishAt,
		video.AuthorNote,
		video.UpdatedAt,
		video.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating video %s: %w", video.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("video", video.ID)
	}

	return nil
}

// Delete removes a video. The foreign key's ON DELETE SET NULL clears
// video_id on the video's comments — they survive as orphans.
func (r *VideoRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx,
		`DELETE FROM videos WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting video %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("video", id)
	}

	return nil
}
