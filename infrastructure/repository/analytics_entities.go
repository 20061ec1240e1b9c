package repository

import (
	"context"
	"time"

	"github.com/vfg2006/funnel-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

const (
	googleAccountsTable   = "google_accounts"
	googlePropertiesTable = "google_properties"
	analyticsDataTable    = "google_analytics_data"
)

type AnalyticsEntityRepository interface {
	SaveAccount(ctx context.Context, userID int64, account domain.AnalyticsAccount) (int64, error)
	SaveProperty(ctx context.Context, userID int64, property domain.AnalyticsProperty) (int64, error)
	SaveReportRow(ctx context.Context, userID int64, row domain.ReportRow) (int64, error)
	DeleteReportRowsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type analyticsEntityRepository struct {
	conn     postgres.Queryer
	upserter *Upserter
}

func NewAnalyticsEntityRepository(conn postgres.Queryer, upserter *Upserter) AnalyticsEntityRepository {
	return &analyticsEntityRepository{
		conn:     conn,
		upserter: upserter,
	}
}

func (r *analyticsEntityRepository) SaveAccount(ctx context.Context, userID int64, account domain.AnalyticsAccount) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      googleAccountsTable,
		NaturalKey: []string{"user_id", "account_id"},
		Values: map[string]any{
			"user_id":      userID,
			"account_id":   account.ID,
			"display_name": account.DisplayName,
		},
		TouchColumn: "updated_at",
	})
}

func (r *analyticsEntityRepository) SaveProperty(ctx context.Context, userID int64, property domain.AnalyticsProperty) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      googlePropertiesTable,
		NaturalKey: []string{"user_id", "property_id"},
		Values: map[string]any{
			"user_id":      userID,
			"account_id":   property.AccountID,
			"property_id":  property.ID,
			"display_name": property.DisplayName,
		},
		TouchColumn: "updated_at",
	})
}

func (r *analyticsEntityRepository) SaveReportRow(ctx context.Context, userID int64, row domain.ReportRow) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      analyticsDataTable,
		NaturalKey: []string{"user_id", "property_id", "date"},
		Values: map[string]any{
			"user_id":         userID,
			"property_id":     row.PropertyID,
			"date":            row.Date,
			"sessions":        row.Sessions,
			"active_users":    row.ActiveUsers,
			"new_users":       row.NewUsers,
			"engagement_rate": row.EngagementRate,
			"conversions":     row.Conversions,
		},
		TouchColumn: "updated_at",
	})
}

func (r *analyticsEntityRepository) DeleteReportRowsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteOlderThan(ctx, r.conn, analyticsDataTable, "date", cutoff)
}
