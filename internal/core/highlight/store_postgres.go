// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package highlight

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/database/schema"
	"github.com/taibuivan/canon/internal/platform/dberr"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
)

const (
	resourceHighlight = "Highlight"
	resourceSession   = "Study session"
)

// PostgresRepository implements [Repository] on the study.highlight table.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed highlight repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var selectColumns = schema.List(schema.StudyHighlight.Columns())

func scanHighlight(row pgx.Row) (*Highlight, error) {
	highlight := &Highlight{}
	err := row.Scan(
		&highlight.ID,
		&highlight.SessionID,
		&highlight.Verse,
		&highlight.StartOffset,
		&highlight.EndOffset,
		&highlight.Text,
		&highlight.Color,
		&highlight.CreatedAt,
	)
	return highlight, err
}

func (repository *PostgresRepository) Create(context context.Context, highlight *Highlight) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.StudyHighlight.Table, selectColumns)

	_, err := repository.pool.Exec(context, query,
		highlight.ID,
		highlight.SessionID,
		highlight.Verse,
		highlight.StartOffset,
		highlight.EndOffset,
		highlight.Text,
		highlight.Color,
		highlight.CreatedAt,
	)
	switch {
	case dberr.IsForeignKeyViolation(err):
		return apperr.NotFound(resourceSession)
	case dberr.IsUniqueViolation(err):
		return apperr.Conflict("Highlight already exists")
	}
	return dberr.Wrap(err, resourceHighlight, "create highlight")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Highlight, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.StudyHighlight.Table, schema.StudyHighlight.ID)

	highlight, err := scanHighlight(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceHighlight, "find highlight")
	}
	return highlight, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Highlight, error) {
	table := schema.StudyHighlight

	var (
		conditions []string
		arguments  []any
	)
	if filter.SessionID != "" {
		arguments = append(arguments, filter.SessionID)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.SessionID, len(arguments)))
	}
	if filter.Verse != nil {
		arguments = append(arguments, *filter.Verse)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.Verse, len(arguments)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s, %s, %s`,
		selectColumns, table.Table, where, table.Verse, table.StartOffset, table.CreatedAt)

	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceHighlight, "list highlights")
	}
	defer rows.Close()

	highlights := []*Highlight{}
	for rows.Next() {
		highlight, err := scanHighlight(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceHighlight, "scan highlight")
		}
		highlights = append(highlights, highlight)
	}

	return highlights, dberr.Wrap(rows.Err(), resourceHighlight, "iterate highlights")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.StudyHighlight.Table, schema.StudyHighlight.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceHighlight, "delete highlight")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceHighlight)
	}
	return nil
}
