package db

import (
	"context"
	"fmt"
)

// TruncateAll empties every application table and resets identities.
// Integration tests call it between cases.
func (db *DB) TruncateAll(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `
		TRUNCATE TABLE account_residents, accounts, residents, idempotency_keys
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
