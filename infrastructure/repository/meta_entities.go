package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/funnel-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

const (
	adAccountsTable       = "ad_accounts"
	campaignsTable        = "campaigns"
	adSetsTable           = "ad_sets"
	adsTable              = "ads"
	campaignInsightsTable = "campaign_insights"
)

var (
	// campaigns.account_id foi renomeada para ad_account_id
	campaignAccountColumn = ColumnAlias{Current: "ad_account_id", Legacy: "account_id"}
	// campaign_insights.date foi renomeada para date_start
	insightDateColumn = ColumnAlias{Current: "date_start", Legacy: "date"}
)

type MetaEntityRepository interface {
	SaveAdAccount(ctx context.Context, userID int64, account domain.AdAccount) (int64, error)
	SaveCampaign(ctx context.Context, accountID string, campaign domain.Campaign) (int64, error)
	SaveAdSet(ctx context.Context, campaignID string, adSet domain.AdSet) (int64, error)
	SaveAd(ctx context.Context, adSetID string, ad domain.Ad) (int64, error)
	// FindCampaignRecordID retorna found=false quando a campanha ainda não foi sincronizada
	FindCampaignRecordID(ctx context.Context, campaignID string) (int64, bool, error)
	SaveCampaignInsight(ctx context.Context, campaignRecordID int64, insight domain.CampaignInsight) (int64, error)
	DeleteInsightsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type metaEntityRepository struct {
	conn     postgres.Queryer
	upserter *Upserter
}

func NewMetaEntityRepository(conn postgres.Queryer, upserter *Upserter) MetaEntityRepository {
	return &metaEntityRepository{
		conn:     conn,
		upserter: upserter,
	}
}

func (r *metaEntityRepository) SaveAdAccount(ctx context.Context, userID int64, account domain.AdAccount) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      adAccountsTable,
		NaturalKey: []string{"user_id", "account_id"},
		Values: map[string]any{
			"user_id":       userID,
			"account_id":    account.ID,
			"name":          account.Name,
			"status":        account.Status,
			"amount_spent":  account.AmountSpent,
			"currency":      account.Currency,
			"business_name": account.BusinessName,
		},
		TouchColumn: "updated_at",
	})
}

func (r *metaEntityRepository) SaveCampaign(ctx context.Context, accountID string, campaign domain.Campaign) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      campaignsTable,
		NaturalKey: []string{"account", "campaign_id"},
		Values: map[string]any{
			"account":         accountID,
			"campaign_id":     campaign.ID,
			"name":            campaign.Name,
			"objective":       campaign.Objective,
			"status":          campaign.Status,
			"daily_budget":    campaign.DailyBudget,
			"lifetime_budget": campaign.LifetimeBudget,
			"created_time":    campaign.CreatedTime,
			"start_time":      campaign.StartTime,
			"stop_time":       campaign.StopTime,
		},
		Aliases:     map[string]ColumnAlias{"account": campaignAccountColumn},
		TouchColumn: "updated_at",
	})
}

func (r *metaEntityRepository) SaveAdSet(ctx context.Context, campaignID string, adSet domain.AdSet) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      adSetsTable,
		NaturalKey: []string{"campaign_id", "ad_set_id"},
		Values: map[string]any{
			"campaign_id":     campaignID,
			"ad_set_id":       adSet.ID,
			"name":            adSet.Name,
			"status":          adSet.Status,
			"bid_strategy":    adSet.BidStrategy,
			"daily_budget":    adSet.DailyBudget,
			"lifetime_budget": adSet.LifetimeBudget,
			"start_time":      adSet.StartTime,
			"end_time":        adSet.EndTime,
		},
		TouchColumn: "updated_at",
	})
}

func (r *metaEntityRepository) SaveAd(ctx context.Context, adSetID string, ad domain.Ad) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      adsTable,
		NaturalKey: []string{"ad_set_id", "ad_id"},
		Values: map[string]any{
			"ad_set_id":    adSetID,
			"ad_id":        ad.ID,
			"name":         ad.Name,
			"status":       ad.Status,
			"created_time": ad.CreatedTime,
		},
		TouchColumn: "updated_at",
	})
}

func (r *metaEntityRepository) FindCampaignRecordID(ctx context.Context, campaignID string) (int64, bool, error) {
	query, args, err := squirrel.
		Select("id").
		From(campaignsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, false, newPersistenceError("select", campaignsTable, err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, newPersistenceError("select", campaignsTable, err)
	}

	return id, true, nil
}

func (r *metaEntityRepository) SaveCampaignInsight(ctx context.Context, campaignRecordID int64, insight domain.CampaignInsight) (int64, error) {
	return r.upserter.Upsert(ctx, UpsertStatement{
		Table:      campaignInsightsTable,
		NaturalKey: []string{"campaign_id", "date"},
		Values: map[string]any{
			"campaign_db_id":        campaignRecordID,
			"campaign_id":           insight.CampaignID,
			"date":                  insight.DateStart,
			"impressions":           insight.Impressions,
			"clicks":                insight.Clicks,
			"spend":                 insight.Spend,
			"cpc":                   insight.CPC,
			"ctr":                   insight.CTR,
			"reach":                 insight.Reach,
			"frequency":             insight.Frequency,
			"unique_clicks":         insight.UniqueClicks,
			"cost_per_unique_click": insight.CostPerUniqueClick,
		},
		Aliases:     map[string]ColumnAlias{"date": insightDateColumn},
		TouchColumn: "updated_at",
	})
}

func (r *metaEntityRepository) DeleteInsightsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	dateColumn, err := r.upserter.ResolveColumn(ctx, campaignInsightsTable, insightDateColumn)
	if err != nil {
		return 0, err
	}

	return deleteOlderThan(ctx, r.conn, campaignInsightsTable, dateColumn, cutoff)
}

func deleteOlderThan(ctx context.Context, conn postgres.Queryer, table, dateColumn string, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Lt{dateColumn: cutoff.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, newPersistenceError("delete", table, err)
	}

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, newPersistenceError("delete", table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, newPersistenceError("delete", table, err)
	}

	return rowsAffected, nil
}
