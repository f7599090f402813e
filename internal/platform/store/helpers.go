package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	perr "convertis/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// IsNoRows reports whether err is the "no rows" sentinel of either backend
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// ExecOne runs a write and returns perr.ErrNotFound unless exactly one row changed
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	switch n := tag.RowsAffected(); n {
	case 1:
		return nil
	case 0:
		return perr.ErrNotFound
	default:
		return fmt.Errorf("expected exactly one row affected, got %d", n)
	}
}

// Scalar queries the first row, first column into T; no rows is perr.ErrNotFound
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		if IsNoRows(err) {
			return zero, perr.ErrNotFound
		}
		return zero, err
	}
	return v, nil
}

// One uses a custom scanner to map a single row into T; no rows is perr.ErrNotFound
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, perr.ErrNotFound
	}
	item, err := scan(rows)
	if err != nil {
		return zero, err
	}
	if rows.Next() {
		return zero, fmt.Errorf("expected 1 row, got more")
	}
	return item, rows.Err()
}

// Many uses a custom scanner to map all rows into []T; an empty result is a non-nil empty slice
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Strings collects a single text column into a non-nil slice
func Strings(ctx context.Context, q RowQuerier, sql string, args ...any) ([]string, error) {
	return Many(ctx, q, func(r Row) (string, error) {
		var s string
		err := r.Scan(&s)
		return s, err
	}, sql, args...)
}
