package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardInsertsNewIdentity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users \(email, name, role\)`).
		WithArgs("a@x.com", "Alice", "patient").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "role"}).
			AddRow(int64(1), "a@x.com", "Alice", "patient"))

	repo := NewPostgresRepositoryWithDB(mock)
	ident, err := repo.Onboard(context.Background(), &OnboardRequest{
		Email: "a@x.com", Name: "Alice", Role: RolePatient,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ident.ID)
	assert.Equal(t, "a@x.com", ident.Email)
	assert.Equal(t, RolePatient, ident.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardDuplicateEmailFetchesOriginal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// ON CONFLICT DO NOTHING yields zero rows for a known email.
	mock.ExpectQuery(`INSERT INTO users \(email, name, role\)`).
		WithArgs("a@x.com", "Alice2", "owner").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`SELECT id, email, name, role FROM users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "role"}).
			AddRow(int64(1), "a@x.com", "Alice", "patient"))

	repo := NewPostgresRepositoryWithDB(mock)
	ident, err := repo.Onboard(context.Background(), &OnboardRequest{
		Email: "a@x.com", Name: "Alice2", Role: RoleOwner,
	})
	require.NoError(t, err)
	// The original record, not the second payload.
	assert.Equal(t, "Alice", ident.Name)
	assert.Equal(t, RolePatient, ident.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardNormalizesEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "Alice", "patient").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "role"}).
			AddRow(int64(1), "a@x.com", "Alice", "patient"))

	repo := NewPostgresRepositoryWithDB(mock)
	_, err = repo.Onboard(context.Background(), &OnboardRequest{
		Email: "  A@X.com ", Name: "Alice", Role: RolePatient,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardValidation(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	tests := []struct {
		name string
		req  OnboardRequest
		want error
	}{
		{"missing email", OnboardRequest{Name: "Alice", Role: RolePatient}, ErrMissingEmail},
		{"malformed email", OnboardRequest{Email: "not-an-address", Name: "Alice", Role: RolePatient}, ErrInvalidEmail},
		{"missing name", OnboardRequest{Email: "a@x.com", Role: RolePatient}, ErrMissingName},
		{"unknown role", OnboardRequest{Email: "a@x.com", Name: "Alice", Role: "admin"}, ErrInvalidRole},
		{"empty role", OnboardRequest{Email: "a@x.com", Name: "Alice"}, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Onboard(ctx, &tt.req)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}

func TestInMemoryOnboardIdempotence(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, err := repo.Onboard(ctx, &OnboardRequest{Email: "a@x.com", Name: "Alice", Role: RolePatient})
	require.NoError(t, err)
	second, err := repo.Onboard(ctx, &OnboardRequest{Email: "a@x.com", Name: "Alice2", Role: RoleOwner})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice", second.Name)
	assert.Equal(t, RolePatient, second.Role)

	patients, err := repo.CountDistinctPatients(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), patients)
}
