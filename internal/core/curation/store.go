// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package curation

import "context"

// Repository defines the data access contract for curated content.
type Repository interface {

	// List returns a page of content, most recently published first, and the unpaged total.
	List(context context.Context, filter Filter, limit, offset int) ([]*Content, int, error)

	// FindByID returns a content item. NotFound if absent.
	FindByID(context context.Context, id string) (*Content, error)

	// Sections returns every section with its item count, alphabetically.
	Sections(context context.Context) ([]Section, error)

	// Sources returns the curated sources, heaviest weight first.
	Sources(context context.Context) ([]*Source, error)

	// Create inserts a content item. Conflict on a duplicate ID.
	Create(context context.Context, content *Content) error

	// Update replaces every column but created_at. NotFound if absent.
	Update(context context.Context, content *Content) error

	// Delete removes a content item. NotFound if absent.
	Delete(context context.Context, id string) error
}
