// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"context"
	"encoding/json"
	"time"
)

// Repository defines the data access contract for sermons.
type Repository interface {

	// Create inserts a sermon. Conflict on a duplicate ID, NotFound when the session is gone.
	Create(context context.Context, sermon *Sermon) error

	// FindByID returns a sermon. NotFound if absent.
	FindByID(context context.Context, id string) (*Sermon, error)

	// List returns sermons, optionally of one session, newest first.
	List(context context.Context, sessionID string) ([]*Sermon, error)

	// Update replaces every mutable column. NotFound if absent.
	Update(context context.Context, sermon *Sermon) error

	// SetExport stores the export record of a sermon.
	SetExport(context context.Context, id string, export json.RawMessage, updatedAt time.Time) error

	// Delete removes a sermon. NotFound if absent.
	Delete(context context.Context, id string) error
}

// LinkStore keeps download links for a limited time.
type LinkStore interface {

	// Save stores link under token, expiring after ttl.
	Save(context context.Context, token string, link *Link, ttl time.Duration) error

	// Load resolves a token. NotFound once it has expired.
	Load(context context.Context, token string) (*Link, error)

	// Delete revokes a token. Unknown tokens are not an error.
	Delete(context context.Context, token string) error
}
