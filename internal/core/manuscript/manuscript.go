// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package manuscript serves the textual-criticism reference data: manuscript
witnesses, their readings of individual verses, and the variants recorded
against the critical text.

The data ships with the schema migrations and is read-only over HTTP.
*/
package manuscript

import (
	"fmt"
	"strings"
)

// # Domain Enums

// Testament is OT or NT.
type Testament string

const (
	TestamentOld Testament = "OT"
	TestamentNew Testament = "NT"
)

// ParseTestament accepts "OT"/"NT" in any case. Empty input yields "".
func ParseTestament(value string) (Testament, error) {
	switch Testament(strings.ToUpper(strings.TrimSpace(value))) {
	case "":
		return "", nil
	case TestamentOld:
		return TestamentOld, nil
	case TestamentNew:
		return TestamentNew, nil
	}
	return "", fmt.Errorf("unknown testament %q", value)
}

// VariantType classifies how a reading departs from the base text.
type VariantType string

const (
	VariantOrthographic  VariantType = "orthographic"
	VariantMorphological VariantType = "morphological"
	VariantLexical       VariantType = "lexical"
	VariantStructural    VariantType = "structural"
)

const (
	FieldID          = "id"
	FieldBook        = "book"
	FieldChapter     = "chapter"
	FieldVerse       = "verse"
	FieldTestament   = "testament"
	FieldManuscripts = "manuscripts"
)

// # Entities

// Manuscript is a textual witness.
type Manuscript struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	DateLabel    string    `json:"date_label"`
	Tradition    string    `json:"tradition"`
	Testament    Testament `json:"testament"`
	Language     string    `json:"language"`
}

// Verse is the text of one verse as a manuscript preserves it.
type Verse struct {
	ManuscriptID    string `json:"manuscript_id"`
	Book            string `json:"book"`
	Chapter         int    `json:"chapter"`
	Verse           int    `json:"verse"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration"`
}

// Variant is a recorded divergence at one verse.
type Variant struct {
	ID             string      `json:"id"`
	Book           string      `json:"book"`
	Chapter        int         `json:"chapter"`
	Verse          int         `json:"verse"`
	ManuscriptID   string      `json:"manuscript_id"`
	VariantType    VariantType `json:"variant_type"`
	Reading        string      `json:"reading"`
	Description    string      `json:"description"`
	Significant    bool        `json:"significant"`
	AgreementRatio float64     `json:"agreement_ratio"`
}

// Reading pairs a witness with its text of the compared verse.
type Reading struct {
	ManuscriptID    string `json:"manuscript_id"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration"`
}

// Comparison is the side-by-side view of one verse.
type Comparison struct {
	Book     string     `json:"book"`
	Chapter  int        `json:"chapter"`
	Verse    int        `json:"verse"`
	Readings []Reading  `json:"readings"`
	Variants []*Variant `json:"variants"`
}

// VariantFilter narrows variant queries. Nil and empty fields do not filter.
type VariantFilter struct {
	Book      string
	Chapter   *int
	Verse     *int
	Testament Testament
}
