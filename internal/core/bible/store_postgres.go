// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bible (Postgres) implements translation and verse storage.

# Schema Table Mapping
  - bible.translation: One JSON document per translation.
  - bible.verse: Normalized verses keyed by (translation, book, chapter, verse).
*/
package bible

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/database/schema"
	"github.com/taibuivan/canon/internal/platform/dberr"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
)

const resourceTranslation = "Translation"

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed bible repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Translations

func (repository *PostgresRepository) ListTranslations(context context.Context) ([]TranslationSummary, error) {
	table := schema.BibleTranslation
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s`,
		table.ID, table.Name, table.Abbreviation, table.CreatedAt,
		table.Table, table.ID,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceTranslation, "list translations")
	}
	defer rows.Close()

	summaries := []TranslationSummary{}
	for rows.Next() {
		var summary TranslationSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Abbreviation, &summary.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, resourceTranslation, "scan translation")
		}
		summaries = append(summaries, summary)
	}

	return summaries, dberr.Wrap(rows.Err(), resourceTranslation, "iterate translations")
}

func (repository *PostgresRepository) UpsertTranslation(context context.Context, translation *Translation) error {
	table := schema.BibleTranslation
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		table.Table,
		table.ID, table.Name, table.Abbreviation, table.Data, table.CreatedAt, table.UpdatedAt,
		table.ID,
		table.Name, table.Name,
		table.Abbreviation, table.Abbreviation,
		table.Data, table.Data,
		table.CreatedAt, table.CreatedAt,
		table.UpdatedAt, table.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		translation.ID,
		translation.Name,
		translation.Abbreviation,
		[]byte(translation.Data),
		translation.CreatedAt,
	)
	return dberr.Wrap(err, resourceTranslation, "upsert translation")
}

func (repository *PostgresRepository) FindTranslation(context context.Context, id string) (*Translation, error) {
	table := schema.BibleTranslation
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List(translationColumns()), table.Table, table.ID)

	return repository.scanTranslation(repository.pool.QueryRow(context, query, id))
}

func (repository *PostgresRepository) FindTranslationByReference(context context.Context, reference string) (*Translation, error) {
	table := schema.BibleTranslation

	// Exact ID first; abbreviation matches are ordered for a stable pick.
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 OR %s = $1
		ORDER BY (%s = $1) DESC, %s
		LIMIT 1`,
		schema.List(translationColumns()), table.Table,
		table.ID, table.Abbreviation,
		table.ID, table.ID,
	)

	return repository.scanTranslation(repository.pool.QueryRow(context, query, reference))
}

func (repository *PostgresRepository) DeleteTranslation(context context.Context, id string) error {
	table := schema.BibleTranslation
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceTranslation, "delete translation")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceTranslation)
	}
	return nil
}

func translationColumns() []string {
	table := schema.BibleTranslation
	return []string{table.ID, table.Name, table.Abbreviation, table.Data, table.CreatedAt}
}

func (repository *PostgresRepository) scanTranslation(row pgx.Row) (*Translation, error) {
	translation := &Translation{}
	var data []byte

	err := row.Scan(&translation.ID, &translation.Name, &translation.Abbreviation, &data, &translation.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, resourceTranslation, "find translation")
	}

	translation.Data = data
	return translation, nil
}

// # Verses

func (repository *PostgresRepository) ChapterVerses(context context.Context, translation, book string, chapter int) ([]Verse, error) {
	table := schema.BibleVerse
	query := fmt.Sprintf(`
		SELECT %s, %s FROM %s
		WHERE %s = $1 AND %s = $2 AND %s = $3
		ORDER BY %s ASC`,
		table.Verse, table.Text, table.Table,
		table.Translation, table.Book, table.Chapter,
		table.Verse,
	)

	rows, err := repository.pool.Query(context, query, translation, book, chapter)
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter", "query chapter verses")
	}

	verses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Verse, error) {
		var verse Verse
		err := row.Scan(&verse.Number, &verse.Text)
		return verse, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter", "collect chapter verses")
	}

	return verses, nil
}

/*
UpsertVerses writes a batch of verses in a single transaction.

Description: Each verse is queued on a [pgx.Batch] and replaces any existing
row with the same (translation, book, chapter, verse) key.
*/
func (repository *PostgresRepository) UpsertVerses(context context.Context, translation string, verses []VerseRecord) (int, error) {
	if len(verses) == 0 {
		return 0, nil
	}

	table := schema.BibleVerse
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s, %s, %s, %s) DO UPDATE SET %s = EXCLUDED.%s`,
		table.Table,
		table.Translation, table.Book, table.Chapter, table.Verse, table.Text,
		table.Translation, table.Book, table.Chapter, table.Verse,
		table.Text, table.Text,
	)

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "Verse", "begin verse import")
	}
	defer func() { _ = transaction.Rollback(context) }()

	batch := &pgx.Batch{}
	for _, verse := range verses {
		batch.Queue(query, translation, verse.Book, verse.Chapter, verse.Verse, verse.Text)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return 0, dberr.Wrap(err, "Verse", "upsert verses")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "Verse", "commit verse import")
	}

	return len(verses), nil
}

func (repository *PostgresRepository) ListBooks(context context.Context, translation string) ([]BookSummary, error) {
	table := schema.BibleVerse
	query := fmt.Sprintf(`
		SELECT %s, COUNT(DISTINCT %s), COUNT(*)
		FROM %s
		WHERE %s = $1
		GROUP BY %s
		ORDER BY %s`,
		table.Book, table.Chapter,
		table.Table,
		table.Translation,
		table.Book,
		table.Book,
	)

	rows, err := repository.pool.Query(context, query, translation)
	if err != nil {
		return nil, dberr.Wrap(err, "Book", "list books")
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookSummary, error) {
		var book BookSummary
		err := row.Scan(&book.Book, &book.Chapters, &book.Verses)
		return book, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Book", "collect books")
	}

	return books, nil
}
