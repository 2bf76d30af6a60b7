// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package highlight stores coloured spans marked on a verse during a study
session.

Offsets are character positions inside the verse text; end_offset is
exclusive and never before start_offset.
*/
package highlight

import (
	"context"
	"time"
)

// Color is one of the highlighter pens.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
)

// Colors lists every accepted [Color].
var Colors = []string{
	string(ColorYellow),
	string(ColorGreen),
	string(ColorBlue),
	string(ColorPink),
	string(ColorPurple),
}

const (
	FieldID          = "id"
	FieldSessionID   = "session_id"
	FieldVerse       = "verse"
	FieldStartOffset = "start_offset"
	FieldEndOffset   = "end_offset"
	FieldText        = "text"
	FieldColor       = "color"
)

// Highlight is a marked span of one verse.
type Highlight struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Verse       int       `json:"verse"`
	StartOffset int       `json:"start_offset"`
	EndOffset   int       `json:"end_offset"`
	Text        string    `json:"text"`
	Color       Color     `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// Filter narrows highlight listings. Zero values do not filter.
type Filter struct {
	SessionID string
	Verse     *int
}

// SessionChecker confirms that an owning study session exists.
type SessionChecker interface {
	Ensure(context context.Context, id string) error
}
