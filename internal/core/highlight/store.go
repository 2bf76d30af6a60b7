// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package highlight

import "context"

// Repository defines the data access contract for highlights.
type Repository interface {
	Create(context context.Context, highlight *Highlight) error
	FindByID(context context.Context, id string) (*Highlight, error)

	// List returns highlights in verse order, then by start offset.
	List(context context.Context, filter Filter) ([]*Highlight, error)

	Delete(context context.Context, id string) error
}
