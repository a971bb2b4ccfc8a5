package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines report storage. Append-only; no update or delete.
type Repository interface {
	Append(ctx context.Context, req *AppendRequest) (int64, error)
	List(ctx context.Context) ([]Report, error)
}

// reportDB is the pgxpool.Pool subset the repository needs.
type reportDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores report summaries in the relational database.
type PostgresRepository struct {
	db reportDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("reports: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db reportDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append inserts a new summary row and returns its id. The summary is stored
// verbatim.
func (r *PostgresRepository) Append(ctx context.Context, req *AppendRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO reports (name, type, date, summary, file_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query,
		req.Name, req.Type, req.Date, req.Summary, req.FilePath,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("reports: insert: %w", err)
	}
	return id, nil
}

// List returns reports ordered by date descending; rows sharing a date are
// ordered by id ascending so the listing is deterministic.
func (r *PostgresRepository) List(ctx context.Context) ([]Report, error) {
	query := `
		SELECT id, name, type, date, summary, file_path
		FROM reports
		ORDER BY date DESC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports: list: %w", err)
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.Name, &rep.Type, &rep.Date, &rep.Summary, &rep.FilePath); err != nil {
			return nil, fmt.Errorf("reports: scan row: %w", err)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports: iterate: %w", err)
	}
	return out, nil
}
