// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import "context"

// Repository defines the data access contract for notes.
type Repository interface {

	// Upsert inserts the note or replaces every column of an existing one.
	Upsert(context context.Context, note *Note) error

	// FindByID returns a note. NotFound if absent.
	FindByID(context context.Context, id string) (*Note, error)

	// List returns notes matching filter, newest first.
	List(context context.Context, filter Filter) ([]*Note, error)

	// Delete removes a note. NotFound if absent.
	Delete(context context.Context, id string) error
}
