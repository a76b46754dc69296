// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for every APIGS entity. Each store
// wraps a *sql.DB; list and detail reads take a query.Query so filtering,
// ordering and public visibility are decided in one place.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"apigs/internal/query"
)

var (
	// ErrNotFound is returned when the target record does not exist or is
	// not visible in the requested mode.
	ErrNotFound = errors.New("store: record not found")
	// ErrSlugTaken is returned when a slug is already used by another record.
	ErrSlugTaken = errors.New("store: slug already in use")
	// ErrConflict is returned for any other unique constraint violation.
	ErrConflict = errors.New("store: conflicts with an existing record")
	// ErrInUse is returned when deleting a record other records still reference.
	ErrInUse = errors.New("store: record is still referenced")
	// ErrInvalidReference is returned when a write references a missing record.
	ErrInvalidReference = errors.New("store: referenced record does not exist")
)

// PostgreSQL SQLSTATE codes translated to sentinels.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translate maps constraint violations to store sentinels. onForeignKey is
// the sentinel for a foreign key violation: ErrInvalidReference for writes,
// ErrInUse for deletes.
func translate(err error, onForeignKey error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		if strings.HasSuffix(pgErr.ConstraintName, "_slug_key") {
			return ErrSlugTaken
		}
		return ErrConflict
	case codeForeignKeyViolation:
		return onForeignKey
	}
	return err
}

type scanner interface{ Scan(...any) error }

// list runs q against from, scanning each row with scan. The result is never
// nil so an empty match encodes as [].
func list[T any](ctx context.Context, db *sql.DB, from, columns string, q query.Query, scan func(scanner) (*T, error)) ([]T, error) {
	where, args := q.Where()
	stmt := `SELECT ` + columns + ` FROM ` + from + ` WHERE ` + where + ` ORDER BY ` + q.OrderBy()
	if n := q.Limit(); n > 0 {
		stmt += ` LIMIT ` + strconv.Itoa(n)
	}
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", q.Entity().Table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.Entity().Name, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", q.Entity().Table, err)
	}
	return items, nil
}

// find returns the first row matching q, or ErrNotFound.
func find[T any](ctx context.Context, db *sql.DB, from, columns string, q query.Query, scan func(scanner) (*T, error)) (*T, error) {
	where, args := q.Where()
	row := db.QueryRowContext(ctx,
		`SELECT `+columns+` FROM `+from+` WHERE `+where+` LIMIT 1`, args...)
	item, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", q.Entity().Name, err)
	}
	return item, nil
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, db *sql.DB, table string, id uuid.UUID) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, translate(err, ErrInUse))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// slugTaken reports whether slug is used in table by a record other than
// exclude. Pass uuid.Nil when creating.
func slugTaken(ctx context.Context, db *sql.DB, table, slug string, exclude uuid.UUID) (bool, error) {
	var taken bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+table+` WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check %s slug: %w", table, err)
	}
	return taken, nil
}

// nullIfEmpty stores an empty optional string as NULL.
func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
