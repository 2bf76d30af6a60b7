// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// StudySessionTable represents the 'study.session' table
type StudySessionTable struct {
	Table               string
	ID                  string
	UserID              string
	Translation         string
	Book                string
	Chapter             string
	VerseRange          string
	Stage               string
	Status              string
	UnresolvedQuestions string
	LastAccessed        string
	CreatedAt           string
	UpdatedAt           string
}

// StudySession is the schema definition for study.session
var StudySession = StudySessionTable{
	Table:               "study.session",
	ID:                  "id",
	UserID:              "userid",
	Translation:         "translation",
	Book:                "book",
	Chapter:             "chapter",
	VerseRange:          "verserange",
	Stage:               "stage",
	Status:              "status",
	UnresolvedQuestions: "unresolvedquestions",
	LastAccessed:        "lastaccessed",
	CreatedAt:           "createdat",
	UpdatedAt:           "updatedat",
}

func (t StudySessionTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Translation, t.Book, t.Chapter, t.VerseRange, t.Stage, t.Status, t.UnresolvedQuestions, t.LastAccessed, t.CreatedAt, t.UpdatedAt,
	}
}
