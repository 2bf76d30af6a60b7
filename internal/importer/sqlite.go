// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package importer reads Bible texts distributed outside the API into the
shapes the bible service stores.

Two sources are supported:

  - SQLite Bible databases with one row per verse in b, c, v, t columns,
    b being the canonical book number (1 = Genesis, 66 = Revelation).
  - JSON translation documents, stored as-is for document resolution.
*/
package importer

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/taibuivan/canon/internal/core/bible"
	"github.com/taibuivan/canon/internal/core/manuscript"
)

// DefaultTable is the verse table read when none is given.
const DefaultTable = "verses"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// canonicalBooks is the 66-book Protestant canon in book-number order.
var canonicalBooks = append(append([]string{}, manuscript.OldTestamentBooks...), manuscript.NewTestamentBooks...)

// BookName maps a canonical book number to its name.
func BookName(number int) (string, bool) {
	if number < 1 || number > len(canonicalBooks) {
		return "", false
	}
	return canonicalBooks[number-1], true
}

// OpenSQLite opens a SQLite database file read-only.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("importer: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("importer: open %s: %w", path, err)
	}
	return db, nil
}

/*
ReadVerses reads every verse of table.

Description: Rows come back in canonical order. Blank verses are skipped;
a book number outside 1..66 fails the whole read.

Parameters:
  - context: context.Context
  - db: *sql.DB
  - table: string (DefaultTable when empty)

Returns:
  - []bible.VerseRecord: Verses ready for bible.Service.ImportVerses
  - error: Invalid table name, query failures or unknown book numbers
*/
func ReadVerses(context context.Context, db *sql.DB, table string) ([]bible.VerseRecord, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("importer: invalid table name %q", table)
	}

	query := fmt.Sprintf(`SELECT b, c, v, t FROM %s ORDER BY b, c, v`, table)
	rows, err := db.QueryContext(context, query)
	if err != nil {
		return nil, fmt.Errorf("importer: query %s: %w", table, err)
	}
	defer rows.Close()

	verses := []bible.VerseRecord{}
	for rows.Next() {
		var (
			book, chapter, verse int
			text                 sql.NullString
		)
		if err := rows.Scan(&book, &chapter, &verse, &text); err != nil {
			return nil, fmt.Errorf("importer: scan %s: %w", table, err)
		}

		name, ok := BookName(book)
		if !ok {
			return nil, fmt.Errorf("importer: unknown book number %d at %d:%d", book, chapter, verse)
		}

		content := strings.TrimSpace(text.String)
		if content == "" {
			continue
		}

		verses = append(verses, bible.VerseRecord{Book: name, Chapter: chapter, Verse: verse, Text: content})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("importer: iterate %s: %w", table, err)
	}
	return verses, nil
}
