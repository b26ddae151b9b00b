package model

import "time"

// AnonymousAuthor is stored as the comment author when the visitor leaves
// the name field blank.
const AnonymousAuthor = "anonymous"

// Comment is a visitor-submitted comment on a video.
//
// VideoID is a plain foreign-key-style reference. Deleting a video does not
// delete its comments; the database clears the reference instead, so an
// orphaned comment has VideoID == "".
//
// IsApproved defaults to true on creation — moderation is opt-out. An
// administrator hides a comment by flipping the flag, not the other way
// around.
type Comment struct {
	ID         string    `json:"id"`
	VideoID    string    `json:"videoId"`
	Author     string    `json:"author"`
	Text       string    `json:"text"`
	PostedAt   time.Time `json:"postedAt"`
	IsApproved bool      `json:"isApproved"`
}
