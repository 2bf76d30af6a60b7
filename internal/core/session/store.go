// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"time"
)

// # Session Data Access

// Repository defines the data access contract for study sessions.
type Repository interface {

	// Create inserts a new session. Conflict when the ID is taken.
	Create(context context.Context, session *Session) error

	// FindByID returns a session. NotFound if absent.
	FindByID(context context.Context, id string) (*Session, error)

	/*
		Update replaces the mutable fields of an existing session.

		Parameters:
		  - context: context.Context
		  - session: *Session (ID identifies the row; timestamps already set)

		Returns:
		  - error: NotFound if the row does not exist
	*/
	Update(context context.Context, session *Session) error

	// UpdateStage sets the stage and last-accessed time and returns the row.
	UpdateStage(context context.Context, id string, stage Stage, accessedAt time.Time) (*Session, error)

	// FindLast returns the most recently accessed session, optionally for one user.
	FindLast(context context.Context, userID string) (*Session, error)

	// List returns sessions matching filter, most recently accessed first.
	List(context context.Context, filter Filter) ([]*Session, error)

	// Exists reports whether a session with the ID is stored.
	Exists(context context.Context, id string) (bool, error)

	/*
		Delete removes the session together with its notes, highlights and
		sermons in one transaction.

		Returns:
		  - DeleteResult: Counts of removed owned rows
		  - error: NotFound if the session does not exist (nothing is removed)
	*/
	Delete(context context.Context, id string) (DeleteResult, error)
}
