package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines identity storage.
type Repository interface {
	// Onboard inserts a new identity or, when the email already exists,
	// returns the pre-existing record unchanged. It never surfaces a
	// uniqueness violation to the caller.
	Onboard(ctx context.Context, req *OnboardRequest) (*Identity, error)

	// CountDistinctPatients counts distinct emails among patient-role rows.
	CountDistinctPatients(ctx context.Context) (int64, error)
}

// registryDB is the pgxpool.Pool subset the repository needs.
type registryDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores identities in the relational database.
type PostgresRepository struct {
	db registryDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("identity: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db registryDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Onboard is a conditional insert-or-fetch. The insert carries
// ON CONFLICT DO NOTHING so a duplicate email yields zero rows rather than a
// uniqueness error; the follow-up select then returns the original record.
// The branch is on row count, never on a caught storage exception.
func (r *PostgresRepository) Onboard(ctx context.Context, req *OnboardRequest) (*Identity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	insert := `
		INSERT INTO users (email, name, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, name, role
	`
	var ident Identity
	err := r.db.QueryRow(ctx, insert, req.Email, req.Name, string(req.Role)).
		Scan(&ident.ID, &ident.Email, &ident.Name, &ident.Role)
	if err == nil {
		return &ident, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("identity: insert: %w", err)
	}

	// Zero rows: the email is already registered. Return it as-is.
	fetch := `SELECT id, email, name, role FROM users WHERE email = $1`
	if err := r.db.QueryRow(ctx, fetch, req.Email).
		Scan(&ident.ID, &ident.Email, &ident.Name, &ident.Role); err != nil {
		return nil, fmt.Errorf("identity: fetch existing: %w", err)
	}
	return &ident, nil
}

// CountDistinctPatients counts distinct patient emails for admin reporting.
func (r *PostgresRepository) CountDistinctPatients(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(DISTINCT email) FROM users WHERE role = 'patient'`
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("identity: count patients: %w", err)
	}
	return count, nil
}
