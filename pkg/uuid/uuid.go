// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the identifiers assigned server-side to study
sessions, notes, highlights, sermons, lexicons and lexicon entries.

Version 7 values are used so rows inserted together sort together.
Clients may still supply their own identifiers; those are stored verbatim.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// OrNew returns id unchanged, or a fresh UUIDv7 when id is empty.
func OrNew(id string) string {
	if id != "" {
		return id
	}
	return New()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
