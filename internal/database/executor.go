package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go"
)

// ErrQuery marks every failure reported by a SurrealQL statement or the connection under it.
var ErrQuery = errors.New("surrealdb query failed")

// run sends query and returns the result of its last statement.
// The archive only issues single-statement queries, so earlier results are never needed.
func run[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) (T, bool, error) {
	var zero T
	start := time.Now()
	results, err := surrealdb.Query[T](ctx, db, query, params)
	slog.Debug("SurrealDB query", "statement", statementKind(query), "duration", time.Since(start))
	if err != nil {
		return zero, false, fmt.Errorf("%w: %s: %w", ErrQuery, statementKind(query), err)
	}
	if results == nil || len(*results) == 0 {
		return zero, false, nil
	}
	last := (*results)[len(*results)-1]
	if last.Error != nil {
		return zero, false, fmt.Errorf("%w: %s: %w", ErrQuery, statementKind(query), last.Error)
	}
	return last.Result, true, nil
}

// Query executes a SurrealQL query and decodes its rows into T.
//
// Example:
//
//	query := "SELECT * FROM contact_submission WHERE client_id = $client"
//	rows, err := Query[Row](ctx, db, query, map[string]any{"client": id})
func Query[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) ([]T, error) {
	rows, _, err := run[[]T](ctx, db, query, params)
	return rows, err
}

// QueryOne returns the first row of a SELECT, or nil when there is none.
// A LIMIT 1 is added when the query carries no limit of its own.
func QueryOne[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) (*T, error) {
	if statementKind(query) == "SELECT" && !hasLimitClause(query) {
		query += " LIMIT 1"
	}
	rows, err := Query[T](ctx, db, query, params)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// Exists reports whether table holds a record whose field equals value.
func Exists(ctx context.Context, db *surrealdb.DB, table, field string, value any) (bool, error) {
	if !isIdent(table) || !isIdent(field) {
		return false, fmt.Errorf("%w: invalid identifier %q.%q", ErrQuery, table, field)
	}
	query := fmt.Sprintf("SELECT VALUE id FROM type::table($tb) WHERE %s = $value", field)
	id, err := QueryOne[any](ctx, db, query, map[string]any{"tb": table, "value": value})
	if err != nil {
		return false, err
	}
	return id != nil, nil
}

// Execute runs a statement whose result is not needed, such as CREATE or DELETE.
//
// Example:
//
//	err := Execute(ctx, db, "DELETE contact_submission WHERE submitted_at < $cutoff", map[string]any{
//	    "cutoff": cutoff,
//	})
func Execute(ctx context.Context, db *surrealdb.DB, query string, params map[string]any) error {
	_, _, err := run[any](ctx, db, query, params)
	return err
}

// statementKind returns the leading keyword of query in upper case.
func statementKind(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// hasLimitClause reports whether LIMIT appears as a keyword in query.
func hasLimitClause(query string) bool {
	for _, f := range strings.Fields(query) {
		if strings.EqualFold(f, "LIMIT") {
			return true
		}
	}
	return false
}

// isIdent accepts the plain table and field names the archive uses.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
