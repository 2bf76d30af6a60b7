// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CurationContentTable represents the 'curation.content' table
type CurationContentTable struct {
	Table         string
	ID            string
	Section       string
	Title         string
	Author        string
	Institution   string
	Tags          string
	MaterialLevel string
	Abstract      string
	URL           string
	PublishedAt   string
	SourceID      string
	CreatedAt     string
}

// CurationContent is the schema definition for curation.content
var CurationContent = CurationContentTable{
	Table:         "curation.content",
	ID:            "id",
	Section:       "section",
	Title:         "title",
	Author:        "author",
	Institution:   "institution",
	Tags:          "tags",
	MaterialLevel: "materiallevel",
	Abstract:      "abstract",
	URL:           "url",
	PublishedAt:   "publishedat",
	SourceID:      "sourceid",
	CreatedAt:     "createdat",
}

func (t CurationContentTable) Columns() []string {
	return []string{
		t.ID, t.Section, t.Title, t.Author, t.Institution, t.Tags, t.MaterialLevel, t.Abstract, t.URL, t.PublishedAt, t.SourceID, t.CreatedAt,
	}
}
