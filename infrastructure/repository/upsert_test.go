package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

const columnLookupQuery = `SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema\(\) AND column_name IN \(\$1,\$2\) AND table_name = \$3`

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

func TestUpserter_UpsertStatementShape(t *testing.T) {
	db, mock := newTestDB(t)
	upserter := NewUpserter(db)

	expected := regexp.QuoteMeta(
		"INSERT INTO ads (ad_id,ad_set_id,created_time,name,status) VALUES ($1,$2,$3,$4,$5) " +
			"ON CONFLICT (ad_set_id, ad_id) DO UPDATE SET created_time = EXCLUDED.created_time, " +
			"name = EXCLUDED.name, status = EXCLUDED.status, updated_at = NOW() RETURNING id",
	)

	// a mesma linha duas vezes gera o mesmo SQL e atualiza no lugar
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("^" + expected + "$").
			WithArgs("ad_1", "set_1", "2024-01-01T00:00:00+0000", "Ad 1", "ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	}

	repo := NewMetaEntityRepository(db, upserter)
	ad := domain.Ad{ID: "ad_1", Name: "Ad 1", Status: "ACTIVE", CreatedTime: "2024-01-01T00:00:00+0000"}

	first, err := repo.SaveAd(context.Background(), "set_1", ad)
	require.NoError(t, err)
	second, err := repo.SaveAd(context.Background(), "set_1", ad)
	require.NoError(t, err)

	assert.Equal(t, int64(42), first)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpserter_ResolveColumn(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		calls    int
		expected string
		err      error
	}{
		{
			name: "Coluna atual existe e a consulta é feita uma única vez",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnLookupQuery).
					WithArgs("ad_account_id", "account_id", "campaigns").
					WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("ad_account_id"))
			},
			calls:    3,
			expected: "ad_account_id",
		},
		{
			name: "Apenas a coluna legada existe",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnLookupQuery).
					WithArgs("ad_account_id", "account_id", "campaigns").
					WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("account_id"))
			},
			calls:    2,
			expected: "account_id",
		},
		{
			name: "Falha na consulta não é guardada",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnLookupQuery).
					WillReturnError(errors.New("connection reset"))
				mock.ExpectQuery(columnLookupQuery).
					WillReturnError(errors.New("connection reset"))
			},
			calls: 2,
			err:   ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			upserter := NewUpserter(db)
			for i := 0; i < tt.calls; i++ {
				column, err := upserter.ResolveColumn(context.Background(), campaignsTable, campaignAccountColumn)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, tt.expected, column)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMetaEntityRepository_SaveCampaignUsesResolvedColumn(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(columnLookupQuery).
		WithArgs("ad_account_id", "account_id", "campaigns").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("account_id"))

	expected := regexp.QuoteMeta(
		"INSERT INTO campaigns (account_id,campaign_id,created_time,daily_budget,lifetime_budget,name,objective,start_time,status,stop_time) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT (account_id, campaign_id) DO UPDATE SET",
	)

	for _, id := range []string{"c1", "c2"} {
		mock.ExpectQuery(expected).
			WithArgs("act_1", id, "", 1000.0, 0.0, "Campanha", "OUTCOME_SALES", "", "ACTIVE", "").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	}

	repo := NewMetaEntityRepository(db, NewUpserter(db))
	for _, id := range []string{"c1", "c2"} {
		recordID, err := repo.SaveCampaign(context.Background(), "act_1", domain.Campaign{
			ID:          id,
			Name:        "Campanha",
			Objective:   "OUTCOME_SALES",
			Status:      "ACTIVE",
			DailyBudget: 1000,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), recordID)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpserter_PersistenceError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`INSERT INTO google_accounts`).
		WillReturnError(&pq.Error{Code: "23502", Message: "null value in column"})

	repo := NewAnalyticsEntityRepository(db, NewUpserter(db))
	_, err := repo.SaveAccount(context.Background(), 1, domain.AnalyticsAccount{ID: "accounts/1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "23502", pErr.Code)
	assert.Equal(t, googleAccountsTable, pErr.Table)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpserter_RejectsIncompleteStatement(t *testing.T) {
	db, mock := newTestDB(t)
	upserter := NewUpserter(db)

	_, err := upserter.Upsert(context.Background(), UpsertStatement{
		Table:      "ads",
		NaturalKey: []string{"ad_set_id", "ad_id"},
		Values:     map[string]any{"ad_id": "1"},
	})

	assert.ErrorIs(t, err, ErrPersistence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpserter_KeyOnlyStatementStillReturnsID(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (a, b) DO UPDATE SET a = EXCLUDED.a RETURNING id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := NewUpserter(db).Upsert(context.Background(), UpsertStatement{
		Table:      "pairs",
		NaturalKey: []string{"a", "b"},
		Values:     map[string]any{"a": 1, "b": 2},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteInsightsOlderThan(t *testing.T) {
	db, mock := newTestDB(t)
	cutoff := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(columnLookupQuery).
		WithArgs("date_start", "date", "campaign_insights").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("date_start").AddRow("date"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaign_insights WHERE date_start < $1")).
		WithArgs("2024-01-10").
		WillReturnResult(sqlmock.NewResult(0, 12))

	deleted, err := NewMetaEntityRepository(db, NewUpserter(db)).DeleteInsightsOlderThan(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
