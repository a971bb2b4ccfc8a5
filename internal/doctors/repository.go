package doctors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines roster storage as seen by the directory and handlers.
type Repository interface {
	ListAll(ctx context.Context) ([]Doctor, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, roster []Doctor) (int, error)
}

// rosterDB is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type rosterDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores the doctor roster in the relational database.
type PostgresRepository struct {
	db rosterDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("doctors: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db rosterDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const doctorColumns = `id, name, specialty, location, rating, availability, lat, lng, insurance, reviews_count, next_available`

// ListAll returns the whole roster in directory (id) order.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("doctors: list roster: %w", err)
	}
	defer rows.Close()

	var roster []Doctor
	for rows.Next() {
		var d Doctor
		if err := scanDoctor(rows, &d); err != nil {
			return nil, fmt.Errorf("doctors: scan roster row: %w", err)
		}
		roster = append(roster, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("doctors: iterate roster: %w", err)
	}
	return roster, nil
}

// GetByID fetches a single roster row.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`
	var d Doctor
	if err := scanDoctor(r.db.QueryRow(ctx, query, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("doctors: select by id: %w", err)
	}
	return &d, nil
}

// Exists reports whether a doctor id resolves to a roster row.
func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM doctors WHERE id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("doctors: existence check: %w", err)
	}
	return exists, nil
}

// Count returns the roster size.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("doctors: count roster: %w", err)
	}
	return count, nil
}

// SeedIfEmpty inserts the given roster only when the doctors table is empty,
// so a warm restart never duplicates seed rows. Returns the number of rows
// inserted (zero on a warm start).
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context, roster []Doctor) (int, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	query := `
		INSERT INTO doctors (name, specialty, location, rating, availability, lat, lng, insurance, reviews_count, next_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	inserted := 0
	for _, d := range roster {
		if err := d.Validate(); err != nil {
			return inserted, fmt.Errorf("doctors: seed row %q: %w", d.Name, err)
		}
		if _, err := r.db.Exec(ctx, query,
			d.Name,
			d.Specialty,
			d.Location,
			d.Rating,
			d.Availability,
			d.Lat,
			d.Lng,
			d.Insurance,
			d.ReviewsCount,
			d.NextAvailable,
		); err != nil {
			return inserted, fmt.Errorf("doctors: seed insert %q: %w", d.Name, err)
		}
		inserted++
	}
	return inserted, nil
}

func scanDoctor(row pgx.Row, d *Doctor) error {
	return row.Scan(
		&d.ID,
		&d.Name,
		&d.Specialty,
		&d.Location,
		&d.Rating,
		&d.Availability,
		&d.Lat,
		&d.Lng,
		&d.Insurance,
		&d.ReviewsCount,
		&d.NextAvailable,
	)
}
