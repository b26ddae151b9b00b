// Package service contains the business logic layer of the application.
//
// The layering follows the usual three-tier shape:
//
//	Handler (HTTP layer)     → parses requests, renders templates
//	Service (business layer) → publication gating, comment moderation
//	Repository (data layer)  → reads/writes SQLite
//
// Services receive repository interfaces, never concrete types, so tests can
// substitute in-memory fakes. Anything time-dependent takes the clock as an
// argument or an injected function — nothing in this package reads the wall
// clock ambiently, which is what keeps the publication rules deterministic
// under test.
package service

import (
	"sort"
	"time"

	"github.com/johnrjervis/juggling-vlog/internal/model"
)

// published filters videos down to those visible at the given time and
// returns them ordered by publish time, newest first. The input slice is not
// modified.
func published(videos []model.Video, now time.Time) []model.Video {
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if v.Published(now) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishAt.After(out[j].PublishAt)
	})
	return out
}

// CurrentVideo returns the video with the latest publish time among those
// already published at `now`. ok is false when nothing qualifies — that is
// the "no videos are available" state, not an error.
func CurrentVideo(videos []model.Video, now time.Time) (model.Video, bool) {
	pub := published(videos, now)
	if len(pub) == 0 {
		return model.Video{}, false
	}
	return pub[0], true
}

// ArchiveVideos returns every published video except the current one,
// ordered newest first. With zero or one published videos the archive is
// empty.
func ArchiveVideos(videos []model.Video, now time.Time) []model.Video {
	pub := published(videos, now)
	if len(pub) <= 1 {
		return []model.Video{}
	}
	return pub[1:]
}
