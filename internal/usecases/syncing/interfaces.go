package syncing

import (
	"context"

	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

// TokenProvider entrega um access token válido para o usuário na plataforma
type TokenProvider interface {
	GetAccessToken(ctx context.Context, userID int64, platform domain.Platform) (string, error)
}

type MetaSource interface {
	ListAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error)
	ListCampaigns(ctx context.Context, accessToken, accountID string) ([]domain.Campaign, error)
	ListAdSets(ctx context.Context, accessToken, campaignID string) ([]domain.AdSet, error)
	ListAds(ctx context.Context, accessToken, adSetID string) ([]domain.Ad, error)
	GetCampaignInsights(ctx context.Context, accessToken, campaignID string, dateRange domain.DateRange) ([]domain.CampaignInsight, error)
}

type AnalyticsSource interface {
	ListAccounts(ctx context.Context, accessToken string) ([]domain.AnalyticsAccount, error)
	ListProperties(ctx context.Context, accessToken, accountID string) ([]domain.AnalyticsProperty, error)
	RunReport(ctx context.Context, accessToken, propertyID string, dateRange domain.DateRange) ([]domain.ReportRow, error)
}
