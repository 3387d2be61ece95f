package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Register the pure-Go sqlite driver.

	"github.com/rshade/gridview/internal/record"
)

// openReadOnly opens a SQLite database without write access.
func openReadOnly(path string) (*sql.DB, error) {
	return sql.Open("sqlite", "file:"+path+"?mode=ro")
}

func loadSQLite(ctx context.Context, path string, opts Options) ([]record.Record, error) {
	if opts.SQLQuery == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingQuery, path)
	}

	db, err := openReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, opts.SQLQuery)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := []record.Record{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		fields := make(map[string]any, len(cols))
		for i, col := range cols {
			fields[col] = sqlValue(values[i])
		}
		records = append(records, record.New(fields, cols, opts.KeyField))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func sqlValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return v
	}
}
