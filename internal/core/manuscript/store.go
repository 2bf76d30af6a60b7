// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manuscript

import "context"

// Repository defines read access to the textual-criticism tables.
type Repository interface {

	// List returns manuscripts, optionally of one testament.
	List(context context.Context, testament Testament) ([]*Manuscript, error)

	FindByID(context context.Context, id string) (*Manuscript, error)

	// Verses returns a manuscript's verses in canonical order. Empty book or
	// nil chapter do not filter.
	Verses(context context.Context, manuscriptID, book string, chapter *int) ([]*Verse, error)

	/*
		Readings returns each witness's text of one verse.

		Parameters:
		  - manuscriptIDs: []string (empty means every witness of the verse)
	*/
	Readings(context context.Context, book string, chapter, verse int, manuscriptIDs []string) ([]Reading, error)

	// Variants returns variants matching the book, chapter and verse of filter.
	// The testament field is applied by the caller.
	Variants(context context.Context, filter VariantFilter) ([]*Variant, error)
}
