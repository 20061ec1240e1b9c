package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

func TestCredentialRepository_GetCredential(t *testing.T) {
	selectQuery := regexp.QuoteMeta(
		"SELECT user_id, platform, access_token, refresh_token, expires_at, created_at, updated_at " +
			"FROM platform_credentials WHERE platform = $1 AND user_id = $2",
	)
	expiresAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"user_id", "platform", "access_token", "refresh_token", "expires_at", "created_at", "updated_at"}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, credential *domain.Credential, err error)
	}{
		{
			name: "Credencial existente",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).
					WithArgs("google_analytics", int64(7)).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(7, "google_analytics", "ya29.token", "1//refresh", expiresAt, expiresAt, expiresAt))
			},
			validate: func(t *testing.T, credential *domain.Credential, err error) {
				require.NoError(t, err)
				require.NotNil(t, credential)
				assert.Equal(t, int64(7), credential.UserID)
				assert.Equal(t, domain.PlatformGoogleAnalytics, credential.Platform)
				assert.Equal(t, "ya29.token", credential.AccessToken)
				assert.Equal(t, "1//refresh", credential.RefreshToken)
				assert.True(t, expiresAt.Equal(credential.ExpiresAt))
			},
		},
		{
			name: "Refresh token nulo vira string vazia",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).
					WithArgs("google_analytics", int64(7)).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(7, "google_analytics", "ya29.token", nil, expiresAt, expiresAt, expiresAt))
			},
			validate: func(t *testing.T, credential *domain.Credential, err error) {
				require.NoError(t, err)
				assert.False(t, credential.HasRefreshToken())
			},
		},
		{
			name: "Usuário sem credencial",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).
					WithArgs("google_analytics", int64(7)).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			validate: func(t *testing.T, credential *domain.Credential, err error) {
				assert.NoError(t, err)
				assert.Nil(t, credential)
			},
		},
		{
			name: "Erro do banco vira PersistenceError",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).WillReturnError(errors.New("timeout"))
			},
			validate: func(t *testing.T, credential *domain.Credential, err error) {
				assert.ErrorIs(t, err, ErrPersistence)
				assert.Nil(t, credential)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			repo := NewCredentialRepository(db, NewUpserter(db))
			credential, err := repo.GetCredential(context.Background(), 7, domain.PlatformGoogleAnalytics)

			tt.validate(t, credential, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCredentialRepository_SaveCredential(t *testing.T) {
	db, mock := newTestDB(t)
	expiresAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	expected := regexp.QuoteMeta(
		"INSERT INTO platform_credentials (access_token,expires_at,platform,refresh_token,user_id) VALUES ($1,$2,$3,$4,$5) " +
			"ON CONFLICT (user_id, platform) DO UPDATE SET access_token = EXCLUDED.access_token, " +
			"expires_at = EXCLUDED.expires_at, refresh_token = EXCLUDED.refresh_token, updated_at = NOW() RETURNING id",
	)

	mock.ExpectQuery(expected).
		WithArgs("EAAB", expiresAt, "meta", nil, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	repo := NewCredentialRepository(db, NewUpserter(db))
	err := repo.SaveCredential(context.Background(), &domain.Credential{
		UserID:      3,
		Platform:    domain.PlatformMeta,
		AccessToken: "EAAB",
		ExpiresAt:   expiresAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
