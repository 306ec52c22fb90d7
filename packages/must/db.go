package must

import (
	"context"
	"fmt"

	"github.com/abdul-hamid-achik/must/packages/db"
)

// Querier runs a query for the SQL assertions. *db.Client implements it.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (*db.QueryResult, error)
}

func query(t TestingT, q Querier, sql string) (*db.QueryResult, bool) {
	t.Helper()
	result, err := q.Query(context.Background(), sql)
	if err != nil {
		report(t, &Failure{Message: fmt.Sprintf("query %q failed", sql), Err: err})
		return nil, false
	}
	return result, true
}

// QueryValue asserts that column of the first row returned by sql equals
// expected. Numbers compare by value.
func QueryValue(t TestingT, q Querier, sql, column string, expected any) {
	t.Helper()
	result, ok := query(t, q, sql)
	if !ok {
		return
	}
	if len(result.Rows) == 0 {
		report(t, &Failure{Message: fmt.Sprintf("query %q returned no rows", sql)})
		return
	}

	actual, exists := db.Column(result.Rows[0], column)
	if !exists {
		report(t, &Failure{Message: fmt.Sprintf("column %q not found in result of %q", column, sql)})
		return
	}
	if !looseEqual(actual, expected) {
		report(t, &Failure{
			Message:  fmt.Sprintf("unexpected value in column %q", column),
			Expected: expected,
			Actual:   actual,
			Compared: true,
		})
	}
}

// QueryRows asserts that sql returns exactly n rows.
func QueryRows(t TestingT, q Querier, sql string, n int) {
	t.Helper()
	result, ok := query(t, q, sql)
	if !ok {
		return
	}
	if len(result.Rows) != n {
		report(t, &Failure{
			Message:  fmt.Sprintf("unexpected row count for %q", sql),
			Expected: n,
			Actual:   len(result.Rows),
			Compared: true,
		})
	}
}
