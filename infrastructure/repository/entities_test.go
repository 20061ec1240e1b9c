package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

func TestMetaEntityRepository_FindCampaignRecordID(t *testing.T) {
	query := regexp.QuoteMeta("SELECT id FROM campaigns WHERE campaign_id = $1 LIMIT 1")

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, id int64, found bool, err error)
	}{
		{
			name: "Campanha sincronizada",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("c1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
			},
			validate: func(t *testing.T, id int64, found bool, err error) {
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, int64(42), id)
			},
		},
		{
			name: "Campanha ainda não sincronizada",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("c1").
					WillReturnError(sql.ErrNoRows)
			},
			validate: func(t *testing.T, id int64, found bool, err error) {
				require.NoError(t, err)
				assert.False(t, found)
				assert.Zero(t, id)
			},
		},
		{
			name: "Falha no banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("c1").
					WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, id int64, found bool, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrPersistence)
				assert.False(t, found)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			id, found, err := NewMetaEntityRepository(db, NewUpserter(db)).FindCampaignRecordID(context.Background(), "c1")

			tt.validate(t, id, found, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAnalyticsEntityRepository_SaveReportRow(t *testing.T) {
	db, mock := newTestDB(t)

	expected := regexp.QuoteMeta(
		"INSERT INTO google_analytics_data (active_users,conversions,date,engagement_rate,new_users,property_id,sessions,user_id) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) " +
			"ON CONFLICT (user_id, property_id, date) DO UPDATE SET active_users = EXCLUDED.active_users, " +
			"conversions = EXCLUDED.conversions, engagement_rate = EXCLUDED.engagement_rate, " +
			"new_users = EXCLUDED.new_users, sessions = EXCLUDED.sessions, updated_at = NOW() RETURNING id",
	)

	mock.ExpectQuery("^"+expected+"$").
		WithArgs(int64(80), float64(3), "2024-01-01", 0.5, int64(20), "properties/1", int64(100), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	repo := NewAnalyticsEntityRepository(db, NewUpserter(db))
	id, err := repo.SaveReportRow(context.Background(), 7, domain.ReportRow{
		PropertyID:     "properties/1",
		Date:           "2024-01-01",
		Sessions:       100,
		ActiveUsers:    80,
		NewUsers:       20,
		EngagementRate: 0.5,
		Conversions:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsEntityRepository_DeleteReportRowsOlderThan(t *testing.T) {
	t.Run("Remove linhas anteriores ao corte", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM google_analytics_data WHERE date < $1")).
			WithArgs("2024-03-01").
			WillReturnResult(sqlmock.NewResult(0, 4))

		deleted, err := NewAnalyticsEntityRepository(db, NewUpserter(db)).
			DeleteReportRowsOlderThan(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha no delete vira erro de persistência", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM google_analytics_data WHERE date < $1")).
			WillReturnError(errors.New("lock timeout"))

		_, err := NewAnalyticsEntityRepository(db, NewUpserter(db)).
			DeleteReportRowsOlderThan(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

		assert.ErrorIs(t, err, ErrPersistence)
	})
}
