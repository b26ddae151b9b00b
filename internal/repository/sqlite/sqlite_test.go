package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/johnrjervis/juggling-vlog/internal/model"
)

// newTestDB opens a throwaway in-memory database with the full schema
// migrated. Each test gets its own database, so no cleanup between tests
// is needed beyond closing the pool.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// createTestVideo inserts a video and returns it with its generated ID.
func createTestVideo(t *testing.T, db *DB, publishAt time.Time) *model.Video {
	t.Helper()

	video := &model.Video{
		Filename:  "three_ball_cascade.mp4",
		Title:     "Three ball cascade",
		PublishAt: publishAt,
	}
	if err := db.Videos().Create(context.Background(), video); err != nil {
		t.Fatalf("failed to create test video: %v", err)
	}

	return video
}
