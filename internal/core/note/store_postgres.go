// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

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
	resourceNote    = "Note"
	resourceSession = "Study session"
)

// PostgresRepository implements [Repository] on the study.note table.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed note repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var selectColumns = schema.List(schema.StudyNote.Columns())

func scanNote(row pgx.Row) (*Note, error) {
	note := &Note{}
	err := row.Scan(
		&note.ID,
		&note.SessionID,
		&note.Source,
		&note.Content,
		&note.Context,
		&note.Pinned,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	return note, err
}

/*
Upsert writes the note as a whole.

Description: On conflict every column is overwritten, including session and
created_at; a note is replaced, never merged.
*/
func (repository *PostgresRepository) Upsert(context context.Context, note *Note) error {
	table := schema.StudyNote
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		table.Table, selectColumns, table.ID,
		table.SessionID, table.SessionID, table.Source, table.Source,
		table.Content, table.Content, table.Context, table.Context,
		table.Pinned, table.Pinned, table.CreatedAt, table.CreatedAt,
		table.UpdatedAt, table.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		note.ID,
		note.SessionID,
		note.Source,
		note.Content,
		note.Context,
		note.Pinned,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if dberr.IsForeignKeyViolation(err) {
		return apperr.NotFound(resourceSession)
	}
	return dberr.Wrap(err, resourceNote, "upsert note")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.StudyNote.Table, schema.StudyNote.ID)

	note, err := scanNote(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceNote, "find note")
	}
	return note, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Note, error) {
	table := schema.StudyNote

	var (
		conditions []string
		arguments  []any
	)
	add := func(column string, value any) {
		arguments = append(arguments, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(arguments)))
	}

	if filter.SessionID != "" {
		add(table.SessionID, filter.SessionID)
	}
	if filter.Source != "" {
		add(table.Source, filter.Source)
	}
	if filter.Pinned != nil {
		add(table.Pinned, *filter.Pinned)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC, %s DESC`,
		selectColumns, table.Table, where, table.CreatedAt, table.ID)

	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceNote, "list notes")
	}
	defer rows.Close()

	notes := []*Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceNote, "scan note")
		}
		notes = append(notes, note)
	}

	return notes, dberr.Wrap(rows.Err(), resourceNote, "iterate notes")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.StudyNote.Table, schema.StudyNote.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceNote, "delete note")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceNote)
	}
	return nil
}
