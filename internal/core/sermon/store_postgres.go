// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/database/schema"
	"github.com/taibuivan/canon/internal/platform/dberr"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
)

const (
	resourceSermon  = "Sermon"
	resourceSession = "Study session"
)

// PostgresRepository implements [Repository] on the study.sermon table.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed sermon repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var selectColumns = schema.List(schema.StudySermon.Columns())

func scanSermon(row pgx.Row) (*Sermon, error) {
	var (
		sermon       = &Sermon{}
		outline      []byte
		applications []byte
		export       []byte
	)
	err := row.Scan(
		&sermon.ID,
		&sermon.SessionID,
		&sermon.Title,
		&sermon.CentralIdea,
		&outline,
		&applications,
		&export,
		&sermon.CreatedAt,
		&sermon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(outline, &sermon.Outline); err != nil {
		return nil, fmt.Errorf("decode sermon outline: %w", err)
	}
	if err := json.Unmarshal(applications, &sermon.Applications); err != nil {
		return nil, fmt.Errorf("decode sermon applications: %w", err)
	}
	if len(export) > 0 {
		sermon.Export = json.RawMessage(export)
	}
	return sermon, nil
}

// encodeBody marshals the JSONB columns of a sermon.
func encodeBody(sermon *Sermon) (outline, applications []byte, err error) {
	if outline, err = json.Marshal(sermon.Outline); err != nil {
		return nil, nil, apperr.Internal(err)
	}
	if applications, err = json.Marshal(sermon.Applications); err != nil {
		return nil, nil, apperr.Internal(err)
	}
	return outline, applications, nil
}

// nullableJSON keeps an absent export as SQL NULL.
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

func (repository *PostgresRepository) Create(context context.Context, sermon *Sermon) error {
	outline, applications, err := encodeBody(sermon)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		schema.StudySermon.Table, selectColumns)

	_, err = repository.pool.Exec(context, query,
		sermon.ID,
		sermon.SessionID,
		sermon.Title,
		sermon.CentralIdea,
		outline,
		applications,
		nullableJSON(sermon.Export),
		sermon.CreatedAt,
		sermon.UpdatedAt,
	)
	switch {
	case dberr.IsForeignKeyViolation(err):
		return apperr.NotFound(resourceSession)
	case dberr.IsUniqueViolation(err):
		return apperr.Conflict("A sermon with this id already exists")
	}
	return dberr.Wrap(err, resourceSermon, "create sermon")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Sermon, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.StudySermon.Table, schema.StudySermon.ID)

	sermon, err := scanSermon(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceSermon, "find sermon")
	}
	return sermon, nil
}

func (repository *PostgresRepository) List(context context.Context, sessionID string) ([]*Sermon, error) {
	table := schema.StudySermon
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE ($1::text = '' OR %s = $1)
		ORDER BY %s DESC, %s DESC`,
		selectColumns, table.Table, table.SessionID, table.CreatedAt, table.ID)

	rows, err := repository.pool.Query(context, query, sessionID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceSermon, "list sermons")
	}
	defer rows.Close()

	sermons := []*Sermon{}
	for rows.Next() {
		sermon, err := scanSermon(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceSermon, "scan sermon")
		}
		sermons = append(sermons, sermon)
	}

	return sermons, dberr.Wrap(rows.Err(), resourceSermon, "iterate sermons")
}

func (repository *PostgresRepository) Update(context context.Context, sermon *Sermon) error {
	outline, applications, err := encodeBody(sermon)
	if err != nil {
		return err
	}

	table := schema.StudySermon
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1`,
		table.Table,
		table.SessionID, table.Title, table.CentralIdea, table.Outline,
		table.Applications, table.Export, table.UpdatedAt,
		table.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		sermon.ID,
		sermon.SessionID,
		sermon.Title,
		sermon.CentralIdea,
		outline,
		applications,
		nullableJSON(sermon.Export),
		sermon.UpdatedAt,
	)
	if dberr.IsForeignKeyViolation(err) {
		return apperr.NotFound(resourceSession)
	}
	if err != nil {
		return dberr.Wrap(err, resourceSermon, "update sermon")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceSermon)
	}
	return nil
}

func (repository *PostgresRepository) SetExport(context context.Context, id string, export json.RawMessage, updatedAt time.Time) error {
	table := schema.StudySermon
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		table.Table, table.Export, table.UpdatedAt, table.ID)

	tag, err := repository.pool.Exec(context, query, id, nullableJSON(export), updatedAt)
	if err != nil {
		return dberr.Wrap(err, resourceSermon, "store sermon export")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceSermon)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.StudySermon.Table, schema.StudySermon.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceSermon, "delete sermon")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceSermon)
	}
	return nil
}
