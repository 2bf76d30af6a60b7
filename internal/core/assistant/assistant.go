// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package assistant answers method questions asked during a study session.

The answer is a fixed template filled from the session context and from
counts of what the student has already recorded. Nothing is retrieved or
generated beyond those counts.
*/
package assistant

import (
	"context"

	"github.com/taibuivan/canon/internal/core/highlight"
	"github.com/taibuivan/canon/internal/core/lexicon"
	"github.com/taibuivan/canon/internal/core/note"
)

const (
	FieldQuery    = "query"
	FieldLanguage = "context.language"
)

// Query is a question asked from inside a study session.
type Query struct {
	Query   string  `json:"query"`
	Context Context `json:"context"`
}

// Context locates the question in the study flow. Every field is optional.
type Context struct {
	SessionID string           `json:"session_id"`
	Stage     string           `json:"stage"`
	Book      string           `json:"book"`
	Chapter   int              `json:"chapter"`
	Language  lexicon.Language `json:"language"`
}

// Counts are the persisted facts the answer is composed from.
type Counts struct {
	Notes       int
	Highlights  int
	LexiconHits int
}

// Answer is the assistant reply.
type Answer struct {
	Answer         string `json:"answer"`
	Warning        string `json:"warning"`
	NoteCount      int    `json:"note_count"`
	HighlightCount int    `json:"highlight_count"`
	LexiconHits    int    `json:"lexicon_hits"`
}

// NoteLister lists the notes of a session.
type NoteLister interface {
	List(context context.Context, filter note.Filter) ([]*note.Note, error)
}

// HighlightLister lists the highlights of a session.
type HighlightLister interface {
	List(context context.Context, filter highlight.Filter) ([]*highlight.Highlight, error)
}

// LexiconCounter counts lexicon entries matching the words of a text.
type LexiconCounter interface {
	CountHits(context context.Context, text string, language lexicon.Language) (int, error)
}
