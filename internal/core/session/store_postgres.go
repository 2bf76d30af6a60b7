// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/database/schema"
	"github.com/taibuivan/canon/internal/platform/dberr"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
)

const resourceSession = "Study session"

// PostgresRepository implements [Repository] on the study.session table.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed session repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var selectColumns = schema.List(schema.StudySession.Columns())

func scanSession(row pgx.Row) (*Session, error) {
	session := &Session{}
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Translation,
		&session.Book,
		&session.Chapter,
		&session.VerseRange,
		&session.Stage,
		&session.Status,
		&session.UnresolvedQuestions,
		&session.LastAccessed,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	return session, err
}

func (repository *PostgresRepository) Create(context context.Context, session *Session) error {
	table := schema.StudySession
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (%s) DO NOTHING`,
		table.Table, selectColumns, table.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.Translation,
		session.Book,
		session.Chapter,
		session.VerseRange,
		session.Stage,
		session.Status,
		session.UnresolvedQuestions,
		session.LastAccessed,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, resourceSession, "create session")
	}
	if tag.RowsAffected() == 0 {
		return apperr.Conflict("Study session already exists")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.StudySession.Table, schema.StudySession.ID)

	session, err := scanSession(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceSession, "find session")
	}
	return session, nil
}

func (repository *PostgresRepository) Update(context context.Context, session *Session) error {
	table := schema.StudySession
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1`,
		table.Table,
		table.UserID, table.Translation, table.Book, table.Chapter, table.VerseRange,
		table.Stage, table.Status, table.UnresolvedQuestions, table.LastAccessed, table.UpdatedAt,
		table.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.Translation,
		session.Book,
		session.Chapter,
		session.VerseRange,
		session.Stage,
		session.Status,
		session.UnresolvedQuestions,
		session.LastAccessed,
		session.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, resourceSession, "update session")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceSession)
	}
	return nil
}

func (repository *PostgresRepository) UpdateStage(context context.Context, id string, stage Stage, accessedAt time.Time) (*Session, error) {
	table := schema.StudySession
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $3
		WHERE %s = $1
		RETURNING %s`,
		table.Table, table.Stage, table.LastAccessed, table.UpdatedAt,
		table.ID,
		selectColumns,
	)

	session, err := scanSession(repository.pool.QueryRow(context, query, id, stage, accessedAt))
	if err != nil {
		return nil, dberr.Wrap(err, resourceSession, "update session stage")
	}
	return session, nil
}

func (repository *PostgresRepository) FindLast(context context.Context, userID string) (*Session, error) {
	table := schema.StudySession
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE ($1::text = '' OR %s = $1)
		ORDER BY %s DESC
		LIMIT 1`,
		selectColumns, table.Table, table.UserID, table.LastAccessed)

	session, err := scanSession(repository.pool.QueryRow(context, query, userID))
	if err != nil {
		return nil, dberr.Wrap(err, resourceSession, "find last session")
	}
	return session, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Session, error) {
	table := schema.StudySession

	var (
		conditions []string
		arguments  []any
	)
	add := func(column string, value any) {
		arguments = append(arguments, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(arguments)))
	}

	if filter.UserID != "" {
		add(table.UserID, filter.UserID)
	}
	if filter.Book != "" {
		add(table.Book, filter.Book)
	}
	if filter.Status != "" {
		add(table.Status, filter.Status)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC`,
		selectColumns, table.Table, where, table.LastAccessed)

	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceSession, "list sessions")
	}
	defer rows.Close()

	sessions := []*Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceSession, "scan session")
		}
		sessions = append(sessions, session)
	}

	return sessions, dberr.Wrap(rows.Err(), resourceSession, "iterate sessions")
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.StudySession.Table, schema.StudySession.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, resourceSession, "check session")
	}
	return exists, nil
}

/*
Delete removes a session and everything it owns.

Description: Owned rows are deleted explicitly so their counts can be
reported; the foreign keys also cascade, which keeps the database consistent
if rows are added by another client mid-transaction.
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) (DeleteResult, error) {
	var result DeleteResult

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return result, dberr.Wrap(err, resourceSession, "begin session delete")
	}
	defer func() { _ = transaction.Rollback(context) }()

	owned := []struct {
		table  string
		column string
		count  *int64
	}{
		{schema.StudyNote.Table, schema.StudyNote.SessionID, &result.Notes},
		{schema.StudyHighlight.Table, schema.StudyHighlight.SessionID, &result.Highlights},
		{schema.StudySermon.Table, schema.StudySermon.SessionID, &result.Sermons},
	}

	for _, child := range owned {
		tag, err := transaction.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, child.table, child.column), id)
		if err != nil {
			return DeleteResult{}, dberr.Wrap(err, resourceSession, "delete "+child.table)
		}
		*child.count = tag.RowsAffected()
	}

	tag, err := transaction.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.StudySession.Table, schema.StudySession.ID), id)
	if err != nil {
		return DeleteResult{}, dberr.Wrap(err, resourceSession, "delete session")
	}
	if tag.RowsAffected() == 0 {
		return DeleteResult{}, apperr.NotFound(resourceSession)
	}

	if err := transaction.Commit(context); err != nil {
		return DeleteResult{}, dberr.Wrap(err, resourceSession, "commit session delete")
	}

	return result, nil
}
