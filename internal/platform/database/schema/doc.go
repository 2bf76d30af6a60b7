// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema is the registry of table and column names used by the
// PostgreSQL repositories. Queries are assembled from these values so a
// column rename only touches one file and the matching migration.
package schema

import "strings"

// List joins column names for SELECT and INSERT clauses.
func List(columns []string) string {
	return strings.Join(columns, ", ")
}
