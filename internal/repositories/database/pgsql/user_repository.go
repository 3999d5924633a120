package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/SscSPs/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserReader {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserReader
var _ portsrepo.UserReader = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, role, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM users
		WHERE user_id = $1;
	`
	var m models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.UserID, &m.Name, &m.Role, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
	)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find user %s", userID))
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// FindUserNamesByIDs includes soft-deleted users so historical entries keep their attribution.
func (r *PgxUserRepository) FindUserNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	rows, err := r.db.Query(ctx, `SELECT user_id, name FROM users WHERE user_id = ANY($1);`, userIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to query user names")
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, mapPgError(err, "failed to scan user name")
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating user names")
	}
	return names, nil
}
