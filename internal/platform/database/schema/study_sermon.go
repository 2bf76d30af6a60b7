// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// StudySermonTable represents the 'study.sermon' table
type StudySermonTable struct {
	Table        string
	ID           string
	SessionID    string
	Title        string
	CentralIdea  string
	Outline      string
	Applications string
	Export       string
	CreatedAt    string
	UpdatedAt    string
}

// StudySermon is the schema definition for study.sermon
var StudySermon = StudySermonTable{
	Table:        "study.sermon",
	ID:           "id",
	SessionID:    "sessionid",
	Title:        "title",
	CentralIdea:  "centralidea",
	Outline:      "outline",
	Applications: "applications",
	Export:       "export",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t StudySermonTable) Columns() []string {
	return []string{
		t.ID, t.SessionID, t.Title, t.CentralIdea, t.Outline, t.Applications, t.Export, t.CreatedAt, t.UpdatedAt,
	}
}
