package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rahulxkr/storekart-api/internal/domain"
)

// Soft-delete policy shared by every table. Rows are never removed by normal
// operations; deletion sets is_deleted and every find/list filters on it.

// notDeleted is the WHERE fragment appended to every find and list query.
const notDeleted = "is_deleted = FALSE"

// softDeleteRow flags one row deleted. A missing row is ErrNotFound; a row
// already flagged is ErrAlreadyDeleted and stays exactly as it was. The flag
// never flips back.
func softDeleteRow(ctx context.Context, q querier, table, id string) error {
	var deleted bool
	query := fmt.Sprintf(`SELECT is_deleted FROM %s WHERE id = $1`, table)
	if err := q.QueryRow(ctx, query, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("check %s row: %w", table, err)
	}
	if deleted {
		return domain.ErrAlreadyDeleted
	}
	update := fmt.Sprintf(`UPDATE %s SET is_deleted = TRUE, updated_at = $2 WHERE id = $1`, table)
	if _, err := q.Exec(ctx, update, id, time.Now()); err != nil {
		return fmt.Errorf("soft delete %s row: %w", table, err)
	}
	return nil
}
