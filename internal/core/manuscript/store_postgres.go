// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manuscript

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/canon/internal/platform/database/schema"
	"github.com/taibuivan/canon/internal/platform/dberr"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
)

const resourceManuscript = "Manuscript"

// PostgresRepository implements [Repository] on the criticism schema.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed manuscript repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var (
	manuscriptColumns = schema.List(schema.CriticismManuscript.Columns())
	verseColumns      = schema.List(schema.CriticismManuscriptVerse.Columns())
	variantColumns    = schema.List(schema.CriticismVariant.Columns())
)

// where collects positional SQL conditions.
type where struct {
	conditions []string
	arguments  []any
}

func (clause *where) equal(column string, value any) {
	clause.arguments = append(clause.arguments, value)
	clause.conditions = append(clause.conditions, fmt.Sprintf("%s = $%d", column, len(clause.arguments)))
}

func (clause *where) String() string {
	if len(clause.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(clause.conditions, " AND ")
}

func (repository *PostgresRepository) List(context context.Context, testament Testament) ([]*Manuscript, error) {
	table := schema.CriticismManuscript

	clause := &where{}
	if testament != "" {
		clause.equal(table.Testament, testament)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s, %s`,
		manuscriptColumns, table.Table, clause, table.Testament, table.ID)

	rows, err := repository.pool.Query(context, query, clause.arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "list manuscripts")
	}

	manuscripts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Manuscript])
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "collect manuscripts")
	}
	return manuscripts, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Manuscript, error) {
	table := schema.CriticismManuscript
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, manuscriptColumns, table.Table, table.ID)

	rows, err := repository.pool.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "find manuscript")
	}

	manuscript, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[Manuscript])
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "find manuscript")
	}
	return manuscript, nil
}

func (repository *PostgresRepository) Verses(context context.Context, manuscriptID, book string, chapter *int) ([]*Verse, error) {
	table := schema.CriticismManuscriptVerse

	clause := &where{}
	clause.equal(table.ManuscriptID, manuscriptID)
	if book != "" {
		clause.equal(table.Book, book)
	}
	if chapter != nil {
		clause.equal(table.Chapter, *chapter)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s, %s, %s`,
		verseColumns, table.Table, clause, table.Book, table.Chapter, table.Verse)

	rows, err := repository.pool.Query(context, query, clause.arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "list manuscript verses")
	}

	verses, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Verse])
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "collect manuscript verses")
	}
	return verses, nil
}

func (repository *PostgresRepository) Readings(context context.Context, book string, chapter, verse int, manuscriptIDs []string) ([]Reading, error) {
	verses, manuscripts := schema.CriticismManuscriptVerse, schema.CriticismManuscript

	query := fmt.Sprintf(`
		SELECT m.%s, m.%s, m.%s, v.%s, v.%s
		FROM %s v
		JOIN %s m ON m.%s = v.%s
		WHERE v.%s = $1 AND v.%s = $2 AND v.%s = $3
		  AND (cardinality($4::text[]) = 0 OR v.%s = ANY($4))
		ORDER BY m.%s, m.%s`,
		manuscripts.ID, manuscripts.Name, manuscripts.Abbreviation, verses.Text, verses.Transliteration,
		verses.Table,
		manuscripts.Table, manuscripts.ID, verses.ManuscriptID,
		verses.Book, verses.Chapter, verses.Verse,
		verses.ManuscriptID,
		manuscripts.Testament, manuscripts.ID,
	)

	if manuscriptIDs == nil {
		manuscriptIDs = []string{}
	}

	rows, err := repository.pool.Query(context, query, book, chapter, verse, manuscriptIDs)
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "compare readings")
	}

	readings, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Reading])
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "collect readings")
	}
	return readings, nil
}

func (repository *PostgresRepository) Variants(context context.Context, filter VariantFilter) ([]*Variant, error) {
	table := schema.CriticismVariant

	clause := &where{}
	if filter.Book != "" {
		clause.equal(table.Book, filter.Book)
	}
	if filter.Chapter != nil {
		clause.equal(table.Chapter, *filter.Chapter)
	}
	if filter.Verse != nil {
		clause.equal(table.Verse, *filter.Verse)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s, %s, %s, %s`,
		variantColumns, table.Table, clause, table.Book, table.Chapter, table.Verse, table.ID)

	rows, err := repository.pool.Query(context, query, clause.arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "list variants")
	}

	variants, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Variant])
	if err != nil {
		return nil, dberr.Wrap(err, resourceManuscript, "collect variants")
	}
	return variants, nil
}
