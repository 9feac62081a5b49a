package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"awreports/pkg/contracts/domain"
)

// ErrStoreUnavailable is returned when the database cannot serve a query at all.
var ErrStoreUnavailable = errors.New("report store unavailable")

// moneyPlaces is the scale money columns are rounded to after summing REAL values.
const moneyPlaces = 4

// Querier is the subset of *sql.DB the repositories need.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// filter accumulates WHERE predicates and their positional arguments.
type filter struct {
	preds []string
	args  []any
}

func (f *filter) add(pred string, args ...any) {
	f.preds = append(f.preds, pred)
	f.args = append(f.args, args...)
}

// year restricts column to the calendar year of y. An unset year adds nothing.
func (f *filter) year(column string, y domain.Year) {
	if !y.IsSet() {
		return
	}
	f.add(fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER) = ?", column), y.Value())
}

func (f *filter) where() string {
	if len(f.preds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.preds, " AND ")
}

// queryRows runs query and scans every row with scan. The result is never nil.
func queryRows[T any](ctx context.Context, q Querier, logger *slog.Logger, op, query string, args []any, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}

	logger.DebugContext(ctx, "Report query completed",
		slog.String("query", op),
		slog.Int("rows", len(out)))
	return out, nil
}

// errDBClosed is the unexported error database/sql returns after DB.Close.
const errDBClosed = "sql: database is closed"

// wrap names the failing report query and tags connection loss as ErrStoreUnavailable.
func wrap(op string, err error) error {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || isDBClosed(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isDBClosed(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if err.Error() == errDBClosed {
			return true
		}
	}
	return false
}
