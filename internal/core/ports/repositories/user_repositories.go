package repositories

import (
	"context"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserNamesByIDs maps each resolvable id to its display name. Unknown
	// ids are simply absent from the result.
	FindUserNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error)
}
