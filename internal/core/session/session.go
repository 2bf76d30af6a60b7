// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session manages study sessions: one reader working through one
passage, stage by stage, from observation to homiletics.

Notes, highlights and sermons hang off a session and are removed with it.
*/
package session

import "time"

// # Domain Enums

// Stage is the interpretive step a session is currently on.
type Stage string

const (
	StageObservation          Stage = "observation"
	StageGrammar              Stage = "grammar"
	StageSemantics            Stage = "semantics"
	StageTheology             Stage = "theology"
	StageCanonicalCorrelation Stage = "canonical-correlation"
	StageHomiletics           Stage = "homiletics"
)

// Stages lists every stage in study order.
var Stages = []Stage{
	StageObservation,
	StageGrammar,
	StageSemantics,
	StageTheology,
	StageCanonicalCorrelation,
	StageHomiletics,
}

// IsValid reports whether s is a recognised [Stage].
func (s Stage) IsValid() bool {
	for _, stage := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// IsInterpretive reports whether s comes before theology, where application
// and preaching are still premature.
func (s Stage) IsInterpretive() bool {
	return s == StageObservation || s == StageGrammar || s == StageSemantics
}

// Status is the lifecycle state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// IsValid reports whether s is a recognised [Status].
func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// DefaultTranslation is assigned when a session starts without one.
const DefaultTranslation = "ACF"

// # Field Names

const (
	FieldUserID      = "user_id"
	FieldTranslation = "translation"
	FieldBook        = "book"
	FieldChapter     = "chapter"
	FieldVerseRange  = "verse_range"
	FieldStage       = "stage"
	FieldStatus      = "status"
	FieldQuestions   = "unresolved_questions"
)

// # Entities

// Session is a study episode over a passage.
type Session struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Translation         string    `json:"translation"`
	Book                string    `json:"book"`
	Chapter             int       `json:"chapter"`
	VerseRange          *string   `json:"verse_range"`
	Stage               Stage     `json:"stage"`
	Status              Status    `json:"status"`
	UnresolvedQuestions []string  `json:"unresolved_questions"`
	LastAccessed        time.Time `json:"last_accessed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Filter narrows session listings. Empty fields do not filter.
type Filter struct {
	UserID string
	Book   string
	Status Status
}

// DeleteResult reports how many owned rows went with a deleted session.
type DeleteResult struct {
	Notes      int64 `json:"notes"`
	Highlights int64 `json:"highlights"`
	Sermons    int64 `json:"sermons"`
}
