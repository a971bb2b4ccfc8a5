package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines ledger storage. The ledger is append-only: there is no
// update or delete operation by design.
type Repository interface {
	Insert(ctx context.Context, req *BookRequest) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)
	ListRecent(ctx context.Context, limit int) ([]Booking, error)
	Count(ctx context.Context) (int64, error)
}

// ledgerDB is the pgxpool.Pool subset the repository needs.
type ledgerDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores the booking ledger in the relational database.
type PostgresRepository struct {
	db ledgerDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("bookings: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db ledgerDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const bookingJoin = `
	SELECT b.id, b.doctor_id, d.name, d.specialty, b.date, b.time, b.status
	FROM bookings b
	JOIN doctors d ON b.doctor_id = d.id
`

// Insert appends a confirmed row and returns it with the doctor join fields
// populated, same shape as List. A foreign-key violation maps to
// ErrUnknownDoctor as a backstop for the race between the service's explicit
// existence check and the insert.
func (r *PostgresRepository) Insert(ctx context.Context, req *BookRequest) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := `
		WITH inserted AS (
			INSERT INTO bookings (doctor_id, date, time, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, doctor_id, date, time, status
		)
		SELECT i.id, i.doctor_id, d.name, d.specialty, i.date, i.time, i.status
		FROM inserted i
		JOIN doctors d ON i.doctor_id = d.id
	`
	booking := &Booking{}
	if err := r.db.QueryRow(ctx, query, req.DoctorID, req.Date, req.Time, StatusConfirmed).
		Scan(&booking.ID, &booking.DoctorID, &booking.DoctorName, &booking.Specialty,
			&booking.Date, &booking.Time, &booking.Status); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrUnknownDoctor
		}
		return nil, fmt.Errorf("bookings: insert: %w", err)
	}
	return booking, nil
}

// List returns the ledger in insertion order joined with doctor name/specialty.
func (r *PostgresRepository) List(ctx context.Context) ([]Booking, error) {
	return r.queryBookings(ctx, bookingJoin+` ORDER BY b.id`)
}

// ListRecent returns the most recent rows by id descending.
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]Booking, error) {
	return r.queryBookings(ctx, bookingJoin+` ORDER BY b.id DESC LIMIT $1`, limit)
}

// Count returns the number of ledger rows.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("bookings: count: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) queryBookings(ctx context.Context, query string, args ...any) ([]Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bookings: list: %w", err)
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.DoctorID, &b.DoctorName, &b.Specialty, &b.Date, &b.Time, &b.Status); err != nil {
			return nil, fmt.Errorf("bookings: scan row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookings: iterate: %w", err)
	}
	return out, nil
}
