// Package jobs holds the maintenance tasks run by the background worker.
package jobs

import (
	"context"
	"fmt"

	"github.com/velastore/vela/internal/repository"
)

// CleanupResult holds the result of a cleanup run
type CleanupResult struct {
	GuestsDeleted int64 `json:"guests_deleted"`
}

// CleanupExpiredGuests deletes guest sessions past their expiry. Their carts
// and cart items go with them via the schema's cascades.
func CleanupExpiredGuests(ctx context.Context, repo repository.Querier) (*CleanupResult, error) {
	deleted, err := repo.DeleteExpiredGuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired guests: %w", err)
	}

	return &CleanupResult{GuestsDeleted: deleted}, nil
}
