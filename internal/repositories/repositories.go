package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/desertthunder/onboard/internal/shared"
)

var sequenceName = regexp.MustCompile(`^[a-z][a-z_]*$`)

// Queryer is satisfied by both [sql.DB] and [sql.Tx].
type Queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NextSequence increments and returns the counter in table's sequence table (table + "_sequence").
//
// Run it on the same [sql.Tx] as the insert it numbers so a failed insert doesn't burn a sequence value.
// Sequence numbers provide stable, human-readable ordering (e.g., submission #15) for `onboard submissions list`.
func NextSequence(q Queryer, table string) (int, error) {
	if !sequenceName.MatchString(table) {
		return 0, fmt.Errorf("%w: invalid sequence table %q", shared.ErrInvalidArgument, table)
	}

	var sequence int
	err := q.QueryRow(fmt.Sprintf("UPDATE %s_sequence SET value = value + 1 WHERE id = 1 RETURNING value", table)).Scan(&sequence)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: sequence row for %s", shared.ErrNotFound, table)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	return sequence, nil
}
