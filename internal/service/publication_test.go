package service

import (
	"testing"
	"time"

	"github.com/johnrjervis/juggling-vlog/internal/model"
)

// The publication rules are pure functions of (videos, now), so these tests
// pin `now` and build fixtures relative to it.

var baseTime = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func videoAt(id string, publishAt time.Time) model.Video {
	return model.Video{
		ID:        id,
		Filename:  id + ".mp4",
		PublishAt: publishAt,
	}
}

func TestCurrentVideoPicksMostRecentlyPublished(t *testing.T) {
	videos := []model.Video{
		videoAt("older", baseTime.Add(-7*24*time.Hour)),
		videoAt("newest", baseTime),
		videoAt("middle", baseTime.Add(-2*24*time.Hour)),
	}

	current, ok := CurrentVideo(videos, baseTime)
	if !ok {
		t.Fatal("CurrentVideo() ok = false, want a video")
	}
	if current.ID != "newest" {
		t.Errorf("CurrentVideo() = %s, want newest", current.ID)
	}
}

func TestCurrentVideoNeverReturnsFutureVideo(t *testing.T) {
	videos := []model.Video{
		videoAt("future", baseTime.Add(5*24*time.Hour)),
		videoAt("published", baseTime.Add(-time.Hour)),
	}

	current, ok := CurrentVideo(videos, baseTime)
	if !ok {
		t.Fatal("CurrentVideo() ok = false, want the published video")
	}
	if current.ID != "published" {
		t.Errorf("CurrentVideo() = %s, want published", current.ID)
	}
}

func TestCurrentVideoPublishedExactlyNowQualifies(t *testing.T) {
	videos := []model.Video{videoAt("exact", baseTime)}

	if _, ok := CurrentVideo(videos, baseTime); !ok {
		t.Error("a video published exactly at `now` should qualify")
	}
}

func TestCurrentVideoEmptySets(t *testing.T) {
	tests := []struct {
		name   string
		videos []model.Video
	}{
		{"no videos at all", nil},
		{"only future videos", []model.Video{
			videoAt("tomorrow", baseTime.Add(24*time.Hour)),
			videoAt("next week", baseTime.Add(7*24*time.Hour)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := CurrentVideo(tt.videos, baseTime); ok {
				t.Error("CurrentVideo() ok = true, want false")
			}
		})
	}
}

func TestArchiveExcludesExactlyTheCurrentVideo(t *testing.T) {
	videos := []model.Video{
		videoAt("oldest", baseTime.Add(-10*24*time.Hour)),
		videoAt("current", baseTime),
		videoAt("older", baseTime.Add(-5*24*time.Hour)),
	}

	current, ok := CurrentVideo(videos, baseTime)
	if !ok {
		t.Fatal("expected a current video")
	}

	archive := ArchiveVideos(videos, baseTime)
	if len(archive) != 2 {
		t.Fatalf("ArchiveVideos() returned %d videos, want 2", len(archive))
	}
	for _, v := range archive {
		if v.ID == current.ID {
			t.Errorf("archive contains the current video %s", v.ID)
		}
	}

	// Newest-of-the-rest first.
	if archive[0].ID != "older" || archive[1].ID != "oldest" {
		t.Errorf("archive order = [%s, %s], want [older, oldest]", archive[0].ID, archive[1].ID)
	}
}

func TestArchiveIgnoresFutureVideos(t *testing.T) {
	videos := []model.Video{
		videoAt("future", baseTime.Add(5*24*time.Hour)),
		videoAt("older", baseTime.Add(-5*24*time.Hour)),
		videoAt("current", baseTime),
	}

	archive := ArchiveVideos(videos, baseTime)
	if len(archive) != 1 {
		t.Fatalf("ArchiveVideos() returned %d videos, want 1", len(archive))
	}
	if archive[0].ID != "older" {
		t.Errorf("archive[0] = %s, want older", archive[0].ID)
	}
}

func TestArchiveEmptyWithZeroOrOnePublishedVideo(t *testing.T) {
	tests := []struct {
		name   string
		videos []model.Video
	}{
		{"no videos", nil},
		{"single published video", []model.Video{videoAt("only", baseTime.Add(-time.Hour))}},
		{"one published one future", []model.Video{
			videoAt("only", baseTime.Add(-time.Hour)),
			videoAt("future", baseTime.Add(time.Hour)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if archive := ArchiveVideos(tt.videos, baseTime); len(archive) != 0 {
				t.Errorf("ArchiveVideos() returned %d videos, want 0", len(archive))
			}
		})
	}
}

// Scenario from the site's history: video A published a week ago, video B
// published just now — B is on the homepage, the archive is exactly [A].
func TestWeekOldVideoMovesToArchiveWhenNewVideoPublishes(t *testing.T) {
	videoA := videoAt("A", baseTime.Add(-7*24*time.Hour))
	videoB := videoAt("B", baseTime)
	videos := []model.Video{videoA, videoB}

	current, ok := CurrentVideo(videos, baseTime)
	if !ok || current.ID != "B" {
		t.Errorf("CurrentVideo() = %v (ok=%v), want B", current.ID, ok)
	}

	archive := ArchiveVideos(videos, baseTime)
	if len(archive) != 1 || archive[0].ID != "A" {
		t.Errorf("ArchiveVideos() = %v, want [A]", archive)
	}
}
