package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/okian/jobpulse/internal/domain/dataset"
)

func readSQLite(ctx context.Context, path, table string) (dataset.Table, error) {
	// sql.Open would create a missing file.
	if _, err := os.Stat(path); err != nil {
		return dataset.Table{}, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return dataset.Table{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table))
	if err != nil {
		return dataset.Table{}, err
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return dataset.Table{}, err
	}
	out := dataset.Table{Headers: headers}
	for rows.Next() {
		vals := make([]any, len(headers))
		ptrs := make([]any, len(headers))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return dataset.Table{}, err
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = cellText(v)
		}
		out.Rows = append(out.Rows, row)
	}
	return out, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
