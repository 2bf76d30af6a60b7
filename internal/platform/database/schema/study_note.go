// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// StudyNoteTable represents the 'study.note' table
type StudyNoteTable struct {
	Table     string
	ID        string
	SessionID string
	Source    string
	Content   string
	Context   string
	Pinned    string
	CreatedAt string
	UpdatedAt string
}

// StudyNote is the schema definition for study.note
var StudyNote = StudyNoteTable{
	Table:     "study.note",
	ID:        "id",
	SessionID: "sessionid",
	Source:    "source",
	Content:   "content",
	Context:   "context",
	Pinned:    "pinned",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t StudyNoteTable) Columns() []string {
	return []string{
		t.ID, t.SessionID, t.Source, t.Content, t.Context, t.Pinned, t.CreatedAt, t.UpdatedAt,
	}
}
