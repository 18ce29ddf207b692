package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i]
		i++
		return id
	}
}

func TestSessionsRepository_CreateSession(t *testing.T) {
	t.Parallel()

	collision := &pgconn.PgError{Code: "23505"}

	type testCase struct {
		name string
		ids  []string

		prepareFn func(t *testing.T, mock pgxmock.PgxPoolIface)

		expectedID  string
		expectedErr error
	}

	tests := []testCase{
		{
			name: "first id is free",
			ids:  []string{"s-1"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("INSERT INTO sessions").
					WithArgs("s-1", testUserID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedID: "s-1",
		},
		{
			name: "collision draws a new id",
			ids:  []string{"s-1", "s-2"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("INSERT INTO sessions").
					WithArgs("s-1", testUserID).
					WillReturnError(collision)
				mock.ExpectExec("INSERT INTO sessions").
					WithArgs("s-2", testUserID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedID: "s-2",
		},
		{
			name: "collisions exhaust attempts",
			ids:  []string{"s-1", "s-2", "s-3"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				for _, id := range []string{"s-1", "s-2", "s-3"} {
					mock.ExpectExec("INSERT INTO sessions").
						WithArgs(id, testUserID).
						WillReturnError(collision)
				}
			},
			expectedErr: collision,
		},
		{
			name: "other errors are not retried",
			ids:  []string{"s-1"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("INSERT INTO sessions").
					WithArgs("s-1", testUserID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareFn(t, mock)

			repo := NewSessionsRepository(mock)
			repo.newID = sequentialIDs(tt.ids...)

			id, err := repo.CreateSession(t.Context(), testUserID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionsRepository_IsActive(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxPoolIface)

		expected    bool
		expectedErr error
	}

	tests := []testCase{
		{
			name: "active session",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT 1 FROM sessions").
					WithArgs("s-1").
					WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			expected: true,
		},
		{
			name: "revoked session",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT 1 FROM sessions").
					WithArgs("s-1").
					WillReturnError(pgx.ErrNoRows)
			},
			expected: false,
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT 1 FROM sessions").
					WithArgs("s-1").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareFn(t, mock)

			active, err := NewSessionsRepository(mock).IsActive(t.Context(), "s-1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, active)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionsRepository_Revoke(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM sessions WHERE session_id").
		WithArgs("s-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM sessions WHERE session_id").
		WithArgs("s-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM sessions WHERE user_id").
		WithArgs(testUserID).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM sessions WHERE user_id").
		WithArgs(testUserID).
		WillReturnError(assert.AnError)

	repo := NewSessionsRepository(mock)
	require.NoError(t, repo.Revoke(t.Context(), "s-1"))
	require.NoError(t, repo.Revoke(t.Context(), "s-1"))
	require.NoError(t, repo.RevokeAll(t.Context(), testUserID))
	assert.ErrorIs(t, repo.RevokeAll(t.Context(), testUserID), assert.AnError)

	assert.NoError(t, mock.ExpectationsWereMet())
}
