// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain fields, no behaviour
// beyond a couple of small helpers. The `json:"..."` struct tags control how
// encoding/json serializes each field.
package model

import "time"

// Video represents one juggling video in the collection.
//
// PublishAt gates visibility everywhere: a video whose PublishAt is in the
// future does not exist as far as visitors are concerned — it appears on no
// page and its detail URL responds 404 until the publish time passes.
type Video struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Title      string    `json:"title"`
	PublishAt  time.Time `json:"publishAt"`
	AuthorNote string    `json:"authorNote"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Published reports whether the video is visible at the given time.
func (v Video) Published(now time.Time) bool {
	return !v.PublishAt.After(now)
}

// StaticPath returns the path of the video's media asset below the static
// file root.
func (v Video) StaticPath() string {
	return "videos/" + v.Filename
}
