// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// StudyHighlightTable represents the 'study.highlight' table
type StudyHighlightTable struct {
	Table       string
	ID          string
	SessionID   string
	Verse       string
	StartOffset string
	EndOffset   string
	Text        string
	Color       string
	CreatedAt   string
}

// StudyHighlight is the schema definition for study.highlight
var StudyHighlight = StudyHighlightTable{
	Table:       "study.highlight",
	ID:          "id",
	SessionID:   "sessionid",
	Verse:       "verse",
	StartOffset: "startoffset",
	EndOffset:   "endoffset",
	Text:        "text",
	Color:       "color",
	CreatedAt:   "createdat",
}

func (t StudyHighlightTable) Columns() []string {
	return []string{
		t.ID, t.SessionID, t.Verse, t.StartOffset, t.EndOffset, t.Text, t.Color, t.CreatedAt,
	}
}
