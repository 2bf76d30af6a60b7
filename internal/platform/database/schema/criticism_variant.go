// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CriticismVariantTable represents the 'criticism.variant' table
type CriticismVariantTable struct {
	Table          string
	ID             string
	Book           string
	Chapter        string
	Verse          string
	ManuscriptID   string
	VariantType    string
	Reading        string
	Description    string
	Significant    string
	AgreementRatio string
}

// CriticismVariant is the schema definition for criticism.variant
var CriticismVariant = CriticismVariantTable{
	Table:          "criticism.variant",
	ID:             "id",
	Book:           "book",
	Chapter:        "chapter",
	Verse:          "verse",
	ManuscriptID:   "manuscriptid",
	VariantType:    "varianttype",
	Reading:        "reading",
	Description:    "description",
	Significant:    "significant",
	AgreementRatio: "agreementratio",
}

func (t CriticismVariantTable) Columns() []string {
	return []string{
		t.ID, t.Book, t.Chapter, t.Verse, t.ManuscriptID, t.VariantType, t.Reading, t.Description, t.Significant, t.AgreementRatio,
	}
}
