// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CurationSourceTable represents the 'curation.source' table
type CurationSourceTable struct {
	Table        string
	ID           string
	Name         string
	URL          string
	Tradition    string
	MaterialType string
	Frequency    string
	Weight       string
	Active       string
	CreatedAt    string
}

// CurationSource is the schema definition for curation.source
var CurationSource = CurationSourceTable{
	Table:        "curation.source",
	ID:           "id",
	Name:         "name",
	URL:          "url",
	Tradition:    "tradition",
	MaterialType: "materialtype",
	Frequency:    "frequency",
	Weight:       "weight",
	Active:       "active",
	CreatedAt:    "createdat",
}

func (t CurationSourceTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.URL, t.Tradition, t.MaterialType, t.Frequency, t.Weight, t.Active, t.CreatedAt,
	}
}
