// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sermon stores the homiletics outline built at the end of a study
// session and exports it as a Markdown manuscript.
package sermon

import (
	"context"
	"encoding/json"
	"time"
)

const (
	FieldID           = "id"
	FieldSessionID    = "session_id"
	FieldTitle        = "title"
	FieldCentralIdea  = "central_idea"
	FieldOutline      = "outline"
	FieldApplications = "applications"
	FieldExport       = "export"
	FieldToken        = "token"
)

// FormatMarkdown is the only export format.
const FormatMarkdown = "markdown"

// Sermon is the preaching outline derived from one study session.
type Sermon struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"session_id"`
	Title        string          `json:"title"`
	CentralIdea  string          `json:"central_idea"`
	Outline      []Division      `json:"outline"`
	Applications []Application   `json:"applications"`
	Export       json.RawMessage `json:"export"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Division is one movement of the sermon body.
type Division struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
}

// Application is a concrete call to action closing the sermon.
type Application struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Export is the record kept on the sermon row after the last export.
type Export struct {
	Format     string    `json:"format"`
	Filename   string    `json:"filename"`
	Token      string    `json:"token"`
	Download   string    `json:"download"`
	ArchiveKey *string   `json:"archive_key,omitempty"`
	ExportedAt time.Time `json:"exported_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Link is what a download token resolves to while it lives.
type Link struct {
	SermonID string `json:"sermon_id"`
	Filename string `json:"filename"`
	Markdown string `json:"markdown"`
}

// SessionChecker confirms that an owning study session exists.
type SessionChecker interface {
	Ensure(context context.Context, id string) error
}
