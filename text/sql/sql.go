// Package sql provides text sources backed by database/sql queries.
// Each evaluation runs its query again; nothing is cached between calls.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lguimbarda/min-text/text/core"
)

// Querier is the part of *sql.DB, *sql.Conn and *sql.Tx used by this package.
// A nil Querier, including a nil pointer of one of those types, fails
// evaluation with core.ErrNilSource.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func isNil(db Querier) bool {
	switch q := db.(type) {
	case nil:
		return true
	case *sql.DB:
		return q == nil
	case *sql.Conn:
		return q == nil
	case *sql.Tx:
		return q == nil
	}
	return false
}

// Scanner is a function that scans a single row into a value.
type Scanner[T any] func(*sql.Row) (T, error)

// QueryRow creates a Scalar that runs query on every evaluation and scans the
// single row it returns. sql.ErrNoRows is returned unchanged when the query
// matches nothing.
func QueryRow[T any](db Querier, query string, scanner Scanner[T], args ...any) core.Scalar[T] {
	return core.ScalarFunc[T](func() (T, error) {
		if isNil(db) || scanner == nil {
			var zero T
			return zero, core.ErrNilSource
		}
		// Texts carry no context; queries run to completion.
		row := db.QueryRowContext(context.Background(), query, args...)
		return scanner(row)
	})
}

// QueryText creates a Text from the first column of the single row returned
// by query. A NULL column yields the empty string.
func QueryText(db Querier, query string, args ...any) core.Text {
	return core.NewEnvelope(QueryRow[string](db, query, func(row *sql.Row) (string, error) {
		var s sql.NullString
		if err := row.Scan(&s); err != nil {
			return "", err
		}
		return s.String, nil
	}, args...))
}

// QueryInt creates an integer Scalar from the first column of the single row
// returned by query. It is typically used as a lazily computed Sub bound.
func QueryInt(db Querier, query string, args ...any) core.Scalar[int] {
	return QueryRow[int](db, query, func(row *sql.Row) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	}, args...)
}

// QueryJoined creates a Text that joins the first column of every row
// returned by query with sep. No rows yields the empty string.
func QueryJoined(db Querier, query, sep string, args ...any) core.Text {
	return core.Envelop(func() (string, error) {
		if isNil(db) {
			return "", core.ErrNilSource
		}
		rows, err := db.QueryContext(context.Background(), query, args...)
		if err != nil {
			return "", err
		}

		var parts []string
		for rows.Next() {
			var s sql.NullString
			if err := rows.Scan(&s); err != nil {
				return "", errors.Join(err, rows.Close())
			}
			parts = append(parts, s.String)
		}
		if err := rows.Err(); err != nil {
			return "", errors.Join(err, rows.Close())
		}
		if err := rows.Close(); err != nil {
			return "", err
		}
		return strings.Join(parts, sep), nil
	})
}
