package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	source, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer source.Close()

	version, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, _, err := source.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()

	body, err := io.ReadAll(up)
	require.NoError(t, err)

	for _, table := range []string{
		"platform_credentials",
		"ad_accounts",
		"campaigns",
		"ad_sets",
		"ads",
		"campaign_insights",
		"google_accounts",
		"google_properties",
		"google_analytics_data",
	} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}

	assert.True(t, strings.Contains(string(body), "UNIQUE (user_id, platform)"))

	down, _, err := source.ReadDown(version)
	require.NoError(t, err)
	defer down.Close()
}

func TestConnection_RunInTransaction(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mock sqlmock.Sqlmock)
		fn    func() error
		err   error
	}{
		{
			name: "Commit quando a função não retorna erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func() error { return nil },
		},
		{
			name: "Rollback quando a função falha",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:  func() error { return errTest },
			err: errTest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			conn := NewFromDB(db)
			err = conn.RunInTransaction(context.Background(), func(_ *sql.Tx) error {
				return tt.fn()
			})

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

var errTest = errors.New("boom")
