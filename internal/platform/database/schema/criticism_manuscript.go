// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CriticismManuscriptTable represents the 'criticism.manuscript' table
type CriticismManuscriptTable struct {
	Table        string
	ID           string
	Name         string
	Abbreviation string
	DateLabel    string
	Tradition    string
	Testament    string
	Language     string
}

// CriticismManuscript is the schema definition for criticism.manuscript
var CriticismManuscript = CriticismManuscriptTable{
	Table:        "criticism.manuscript",
	ID:           "id",
	Name:         "name",
	Abbreviation: "abbreviation",
	DateLabel:    "datelabel",
	Tradition:    "tradition",
	Testament:    "testament",
	Language:     "language",
}

func (t CriticismManuscriptTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Abbreviation, t.DateLabel, t.Tradition, t.Testament, t.Language,
	}
}
