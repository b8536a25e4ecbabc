package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Members, expenses, donations and users carry human-readable sequential
// IDs (MBR-001, DPS-001, QTE-001, U0001). The next ID is derived from the
// current MAX of the column; concurrent inserts of the same ID collide on
// the primary key and surface as ErrDuplicate.

// nextSeqID reads the highest ID in table.column and returns its successor.
func nextSeqID(ctx context.Context, db *sql.DB, table, column, prefix string, width int) (string, error) {
	q := fmt.Sprintf(`SELECT MAX(%s) FROM %s`, column, table)
	var max sql.NullString
	if err := db.QueryRowContext(ctx, q).Scan(&max); err != nil {
		return "", err
	}
	if !max.Valid {
		return bumpSeqID("", prefix, width), nil
	}
	return bumpSeqID(max.String, prefix, width), nil
}

// bumpSeqID increments the numeric suffix of max, keeping prefix and
// zero-padding. An empty or malformed max restarts the sequence at 1.
func bumpSeqID(max, prefix string, width int) string {
	n := 0
	if strings.HasPrefix(max, prefix) {
		if v, err := strconv.Atoi(max[len(prefix):]); err == nil {
			n = v
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, n+1)
}
