// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lexicon

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/database/schema"
	"github.com/taibuivan/canon/internal/platform/dberr"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
	"github.com/taibuivan/canon/pkg/slice"
)

const resourceLexicon = "Lexicon"

// PostgresRepository implements [Repository] on the lexicon schema.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed lexicon repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var (
	lexiconColumns = schema.List(schema.LexiconLexicon.Columns())

	// entryColumns excludes the lookup keys, which never leave the database.
	entryColumns = []string{
		schema.LexiconEntry.ID,
		schema.LexiconEntry.LexiconID,
		schema.LexiconEntry.Word,
		schema.LexiconEntry.Lemma,
		schema.LexiconEntry.Transliteration,
		schema.LexiconEntry.Meaning,
		schema.LexiconEntry.Morphology,
		schema.LexiconEntry.Strongs,
		schema.LexiconEntry.Occurrences,
	}
)

func scanLexicon(row pgx.Row) (*Lexicon, error) {
	lexicon := &Lexicon{}
	err := row.Scan(
		&lexicon.ID,
		&lexicon.Name,
		&lexicon.Language,
		&lexicon.Source,
		&lexicon.EntryCount,
		&lexicon.ArchiveKey,
		&lexicon.CreatedAt,
	)
	return lexicon, err
}

func scanEntry(row pgx.Row) (*Entry, error) {
	entry := &Entry{}
	err := row.Scan(
		&entry.ID,
		&entry.LexiconID,
		&entry.Word,
		&entry.Lemma,
		&entry.Transliteration,
		&entry.Meaning,
		&entry.Morphology,
		&entry.Strongs,
		&entry.Occurrences,
	)
	return entry, err
}

/*
Create stores a lexicon with its entries.

Description: Entries are streamed with COPY inside the same transaction as
the lexicon row, so a failed upload leaves nothing behind.
*/
func (repository *PostgresRepository) Create(context context.Context, lexicon *Lexicon, entries []Entry) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, resourceLexicon, "begin lexicon import")
	}
	defer func() { _ = transaction.Rollback(context) }()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.LexiconLexicon.Table, lexiconColumns)

	_, err = transaction.Exec(context, query,
		lexicon.ID,
		lexicon.Name,
		lexicon.Language,
		lexicon.Source,
		lexicon.EntryCount,
		lexicon.ArchiveKey,
		lexicon.CreatedAt,
	)
	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict("Lexicon already exists")
	}
	if err != nil {
		return dberr.Wrap(err, resourceLexicon, "insert lexicon")
	}

	table := schema.LexiconEntry
	_, err = transaction.CopyFrom(context,
		pgx.Identifier(strings.Split(table.Table, ".")),
		table.Columns(),
		pgx.CopyFromSlice(len(entries), func(index int) ([]any, error) {
			entry := entries[index]
			return []any{
				entry.ID,
				lexicon.ID,
				entry.Word,
				entry.Lemma,
				entry.Transliteration,
				entry.Meaning,
				entry.Morphology,
				entry.Strongs,
				entry.Occurrences,
				Key(entry.Word),
				Key(entry.Lemma),
				Key(entry.Transliteration),
			}, nil
		}),
	)
	if err != nil {
		return dberr.Wrap(err, resourceLexicon, "copy lexicon entries")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, resourceLexicon, "commit lexicon import")
	}
	return nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Lexicon, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s, %s`,
		lexiconColumns, schema.LexiconLexicon.Table, schema.LexiconLexicon.Language, schema.LexiconLexicon.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceLexicon, "list lexicons")
	}
	defer rows.Close()

	lexicons := []*Lexicon{}
	for rows.Next() {
		lexicon, err := scanLexicon(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceLexicon, "scan lexicon")
		}
		lexicons = append(lexicons, lexicon)
	}
	return lexicons, dberr.Wrap(rows.Err(), resourceLexicon, "iterate lexicons")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Lexicon, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		lexiconColumns, schema.LexiconLexicon.Table, schema.LexiconLexicon.ID)

	lexicon, err := scanLexicon(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceLexicon, "find lexicon")
	}
	return lexicon, nil
}

func (repository *PostgresRepository) Entries(context context.Context, lexiconID string) ([]*Entry, error) {
	table := schema.LexiconEntry
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s, %s`,
		schema.List(entryColumns), table.Table, table.LexiconID, table.WordKey, table.ID)

	return repository.queryEntries(context, "list lexicon entries", query, lexiconID)
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LexiconLexicon.Table, schema.LexiconLexicon.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceLexicon, "delete lexicon")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceLexicon)
	}
	return nil
}

func (repository *PostgresRepository) Lookup(context context.Context, key string, language Language) ([]*Entry, error) {
	entry, lexicon := schema.LexiconEntry, schema.LexiconLexicon
	qualified := slice.Map(entryColumns, func(column string) string { return "e." + column })

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s e
		JOIN %s l ON l.%s = e.%s
		WHERE (e.%s = $1 OR e.%s = $1 OR e.%s = $1)
		  AND ($2::text = '' OR l.%s = $2)
		ORDER BY e.%s DESC, e.%s`,
		schema.List(qualified),
		entry.Table,
		lexicon.Table, lexicon.ID, entry.LexiconID,
		entry.WordKey, entry.LemmaKey, entry.TranslitKey,
		lexicon.Language,
		entry.Occurrences, entry.Word,
	)

	return repository.queryEntries(context, "lookup lexicon entries", query, key, string(language))
}

func (repository *PostgresRepository) CountMatches(context context.Context, keys []string, language Language) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	entry, lexicon := schema.LexiconEntry, schema.LexiconLexicon
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s e
		JOIN %s l ON l.%s = e.%s
		WHERE (e.%s = ANY($1) OR e.%s = ANY($1) OR e.%s = ANY($1))
		  AND ($2::text = '' OR l.%s = $2)`,
		entry.Table,
		lexicon.Table, lexicon.ID, entry.LexiconID,
		entry.WordKey, entry.LemmaKey, entry.TranslitKey,
		lexicon.Language,
	)

	var count int
	if err := repository.pool.QueryRow(context, query, keys, string(language)).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, resourceLexicon, "count lexicon matches")
	}
	return count, nil
}

func (repository *PostgresRepository) queryEntries(context context.Context, action, query string, arguments ...any) ([]*Entry, error) {
	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceLexicon, action)
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceLexicon, action)
		}
		entries = append(entries, entry)
	}
	return entries, dberr.Wrap(rows.Err(), resourceLexicon, action)
}
