// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package note stores free-form study notes attached to a session panel.
package note

import (
	"context"
	"time"
)

const (
	FieldID        = "id"
	FieldSessionID = "session_id"
	FieldSource    = "source"
	FieldContent   = "content"
	FieldContext   = "context"
)

// Note is a note written on one panel (observation, grammar, ...) of a session.
type Note struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Source    string    `json:"source"`
	Content   string    `json:"content"`
	Context   *string   `json:"context"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows note listings. Zero values do not filter.
type Filter struct {
	SessionID string
	Source    string
	Pinned    *bool
}

// SessionChecker confirms that an owning study session exists.
type SessionChecker interface {
	Ensure(context context.Context, id string) error
}
