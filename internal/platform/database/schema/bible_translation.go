// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BibleTranslationTable represents the 'bible.translation' table
type BibleTranslationTable struct {
	Table        string
	ID           string
	Name         string
	Abbreviation string
	Data         string
	CreatedAt    string
	UpdatedAt    string
}

// BibleTranslation is the schema definition for bible.translation
var BibleTranslation = BibleTranslationTable{
	Table:        "bible.translation",
	ID:           "id",
	Name:         "name",
	Abbreviation: "abbreviation",
	Data:         "data",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t BibleTranslationTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Abbreviation, t.Data, t.CreatedAt, t.UpdatedAt,
	}
}
