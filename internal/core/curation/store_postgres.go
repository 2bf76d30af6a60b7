// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package curation

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
	resourceContent = "Curated content"
	resourceSource  = "Source"
)

// PostgresRepository implements [Repository] on the curation schema.
type PostgresRepository struct {
	pool pgstore.DB
}

// NewPostgresRepository creates a new Postgres-backed curation repository.
func NewPostgresRepository(pool pgstore.DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var (
	contentColumns = schema.List(schema.CurationContent.Columns())
	sourceColumns  = schema.List(schema.CurationSource.Columns())
)

func contentFields(content *Content) []any {
	return []any{
		&content.ID,
		&content.Section,
		&content.Title,
		&content.Author,
		&content.Institution,
		&content.Tags,
		&content.MaterialLevel,
		&content.Abstract,
		&content.URL,
		&content.PublishedAt,
		&content.SourceID,
		&content.CreatedAt,
	}
}

/*
List returns a filtered page of content and the total count.

Description: The total comes from COUNT(*) OVER() so one round trip serves
both the page and the X-Total-Count header. A tag matches when it is an
element of the tags array.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Content, int, error) {
	table := schema.CurationContent

	var (
		conditions []string
		arguments  []any
	)
	if filter.Section != "" {
		arguments = append(arguments, filter.Section)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.Section, len(arguments)))
	}
	if filter.SourceID != "" {
		arguments = append(arguments, filter.SourceID)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.SourceID, len(arguments)))
	}
	if filter.Tag != "" {
		arguments = append(arguments, filter.Tag)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(%s)", len(arguments), table.Tags))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	arguments = append(arguments, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s %s
		ORDER BY %s DESC, %s
		LIMIT $%d OFFSET $%d`,
		contentColumns, table.Table, where,
		table.PublishedAt, table.ID,
		len(arguments)-1, len(arguments),
	)

	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceContent, "list curated content")
	}
	defer rows.Close()

	var (
		items = []*Content{}
		total int
	)
	for rows.Next() {
		content := &Content{}
		if err := rows.Scan(append(contentFields(content), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, resourceContent, "scan curated content")
		}
		items = append(items, content)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceContent, "iterate curated content")
	}

	return items, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		contentColumns, schema.CurationContent.Table, schema.CurationContent.ID)

	content := &Content{}
	if err := repository.pool.QueryRow(context, query, id).Scan(contentFields(content)...); err != nil {
		return nil, dberr.Wrap(err, resourceContent, "find curated content")
	}
	return content, nil
}

func (repository *PostgresRepository) Sections(context context.Context) ([]Section, error) {
	table := schema.CurationContent
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s GROUP BY %s ORDER BY %s`,
		table.Section, table.Table, table.Section, table.Section)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceContent, "list sections")
	}

	sections, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Section])
	if err != nil {
		return nil, dberr.Wrap(err, resourceContent, "collect sections")
	}
	return sections, nil
}

func (repository *PostgresRepository) Sources(context context.Context) ([]*Source, error) {
	table := schema.CurationSource
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC, %s`,
		sourceColumns, table.Table, table.Weight, table.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceSource, "list sources")
	}

	sources, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Source])
	if err != nil {
		return nil, dberr.Wrap(err, resourceSource, "collect sources")
	}
	return sources, nil
}

func (repository *PostgresRepository) Create(context context.Context, content *Content) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		schema.CurationContent.Table, contentColumns)

	_, err := repository.pool.Exec(context, query,
		content.ID,
		content.Section,
		content.Title,
		content.Author,
		content.Institution,
		content.Tags,
		content.MaterialLevel,
		content.Abstract,
		content.URL,
		content.PublishedAt,
		content.SourceID,
		content.CreatedAt,
	)
	switch {
	case dberr.IsForeignKeyViolation(err):
		return apperr.NotFound(resourceSource)
	case dberr.IsUniqueViolation(err):
		return apperr.Conflict("Curated content with this id already exists")
	}
	return dberr.Wrap(err, resourceContent, "create curated content")
}

func (repository *PostgresRepository) Update(context context.Context, content *Content) error {
	table := schema.CurationContent
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1`,
		table.Table,
		table.Section, table.Title, table.Author, table.Institution, table.Tags,
		table.MaterialLevel, table.Abstract, table.URL, table.PublishedAt, table.SourceID,
		table.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		content.ID,
		content.Section,
		content.Title,
		content.Author,
		content.Institution,
		content.Tags,
		content.MaterialLevel,
		content.Abstract,
		content.URL,
		content.PublishedAt,
		content.SourceID,
	)
	if dberr.IsForeignKeyViolation(err) {
		return apperr.NotFound(resourceSource)
	}
	if err != nil {
		return dberr.Wrap(err, resourceContent, "update curated content")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceContent)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CurationContent.Table, schema.CurationContent.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceContent, "delete curated content")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceContent)
	}
	return nil
}
