// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package curation serves the academic reading material shown on the
// dashboard, grouped into sections and attributed to trusted sources.
package curation

import "time"

const (
	FieldID            = "id"
	FieldSection       = "section"
	FieldTitle         = "title"
	FieldTags          = "tags"
	FieldTag           = "tag"
	FieldMaterialLevel = "material_level"
	FieldURL           = "url"
	FieldSourceID      = "source_id"
)

// Material levels of a curated item.
const (
	LevelIntroductory = "introductory"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// MaterialLevels lists the accepted levels.
var MaterialLevels = []string{LevelIntroductory, LevelIntermediate, LevelAdvanced}

// Source is a publication curated items are drawn from.
type Source struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Tradition    string    `json:"tradition"`
	MaterialType string    `json:"material_type"`
	Frequency    string    `json:"frequency"`
	Weight       int       `json:"weight"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Content is one curated reading.
type Content struct {
	ID            string    `json:"id"`
	Section       string    `json:"section"`
	Title         string    `json:"title"`
	Author        *string   `json:"author"`
	Institution   *string   `json:"institution"`
	Tags          []string  `json:"tags"`
	MaterialLevel string    `json:"material_level"`
	Abstract      *string   `json:"abstract"`
	URL           *string   `json:"url"`
	PublishedAt   time.Time `json:"published_at"`
	SourceID      *string   `json:"source_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Filter narrows content listings. Zero values do not filter.
type Filter struct {
	Section  string
	SourceID string
	Tag      string
}

// Section is a section name with the number of items it holds.
type Section struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// Ingest describes a web page to turn into curated content.
type Ingest struct {
	URL           string
	Section       string
	SourceID      string
	Tags          []string
	MaterialLevel string
}
