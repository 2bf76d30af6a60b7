// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

const sessionID = "0192a5c4-7b1e-7c3a-9f10-5d2e8a6b4c01"

func deleteStatement(table, column string) string {
	return regexp.QuoteMeta("DELETE FROM " + table + " WHERE " + column + " = $1")
}

func newMockRepository(t *testing.T) (pgxmock.PgxPoolIface, *PostgresRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPostgresRepository(mock)
}

func TestPostgresDelete_CascadesInOneTransaction(t *testing.T) {
	mock, repository := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteStatement("study.note", "sessionid")).
		WithArgs(sessionID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(deleteStatement("study.highlight", "sessionid")).
		WithArgs(sessionID).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(deleteStatement("study.sermon", "sessionid")).
		WithArgs(sessionID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(deleteStatement("study.session", "id")).
		WithArgs(sessionID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	result, err := repository.Delete(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{Notes: 3, Highlights: 2, Sermons: 1}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete_MissingSessionRollsBack(t *testing.T) {
	mock, repository := newMockRepository(t)

	mock.ExpectBegin()
	for _, table := range []string{"study.note", "study.highlight", "study.sermon"} {
		mock.ExpectExec(deleteStatement(table, "sessionid")).
			WithArgs(sessionID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
	}
	mock.ExpectExec(deleteStatement("study.session", "id")).
		WithArgs(sessionID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	result, err := repository.Delete(context.Background(), sessionID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, DeleteResult{}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete_ChildFailureRollsBack(t *testing.T) {
	mock, repository := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteStatement("study.note", "sessionid")).
		WithArgs(sessionID).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))
	mock.ExpectExec(deleteStatement("study.highlight", "sessionid")).
		WithArgs(sessionID).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	result, err := repository.Delete(context.Background(), sessionID)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperr.As(err).HTTPStatus)
	assert.Equal(t, DeleteResult{}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
