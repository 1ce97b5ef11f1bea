package models

import "time"

// PendingEdit is the one-shot handoff from the listing to the edit view.
// TS is the issue time in Unix milliseconds.
type PendingEdit struct {
	ID   PostID `json:"id"`
	User string `json:"user"`
	TS   int64  `json:"ts"`
}

// IssuedAt converts TS back to a time.
func (p PendingEdit) IssuedAt() time.Time {
	return time.UnixMilli(p.TS)
}
