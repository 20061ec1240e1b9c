package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/funnel-sync-api/infrastructure/cache"
	"github.com/vfg2006/funnel-sync-api/infrastructure/repository"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/internal/metrics"
)

const (
	ResourceAdAccounts          = "ad_accounts"
	ResourceCampaigns           = "campaigns"
	ResourceAdSets              = "ad_sets"
	ResourceAds                 = "ads"
	ResourceCampaignInsights    = "campaign_insights"
	ResourceAnalyticsAccounts   = "google_accounts"
	ResourceAnalyticsProperties = "google_properties"
	ResourceAnalyticsReport     = "google_analytics_data"
)

// TTLs define por quanto tempo cada recurso fica no cache
type TTLs struct {
	AdAccounts          time.Duration
	Campaigns           time.Duration
	AdSets              time.Duration
	Ads                 time.Duration
	CampaignInsights    time.Duration
	AnalyticsAccounts   time.Duration
	AnalyticsProperties time.Duration
	AnalyticsReport     time.Duration
}

func DefaultTTLs() TTLs {
	return TTLs{
		AdAccounts:          time.Hour,
		Campaigns:           30 * time.Minute,
		AdSets:              30 * time.Minute,
		Ads:                 30 * time.Minute,
		CampaignInsights:    2 * time.Hour,
		AnalyticsAccounts:   time.Hour,
		AnalyticsProperties: 30 * time.Minute,
		AnalyticsReport:     time.Hour,
	}
}

type SyncService interface {
	AdAccounts(ctx context.Context, userID int64) ([]domain.AdAccount, error)
	Campaigns(ctx context.Context, userID int64, accountID string) ([]domain.Campaign, error)
	AdSets(ctx context.Context, userID int64, campaignID string) ([]domain.AdSet, error)
	Ads(ctx context.Context, userID int64, adSetID string) ([]domain.Ad, error)
	CampaignInsights(ctx context.Context, userID int64, campaignID, start, end string) ([]domain.CampaignInsight, error)
	AnalyticsAccounts(ctx context.Context, userID int64) ([]domain.AnalyticsAccount, error)
	AnalyticsProperties(ctx context.Context, userID int64, accountID string) ([]domain.AnalyticsProperty, error)
	AnalyticsReport(ctx context.Context, userID int64, propertyID, start, end string) ([]domain.ReportRow, error)
}

type Service struct {
	tokens        TokenProvider
	meta          MetaSource
	analytics     AnalyticsSource
	metaRepo      repository.MetaEntityRepository
	analyticsRepo repository.AnalyticsEntityRepository
	cache         cache.Store
	recorder      metrics.Recorder
	ttls          TTLs
}

func NewService(
	tokens TokenProvider,
	meta MetaSource,
	analytics AnalyticsSource,
	metaRepo repository.MetaEntityRepository,
	analyticsRepo repository.AnalyticsEntityRepository,
	store cache.Store,
	recorder metrics.Recorder,
	ttls TTLs,
) *Service {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &Service{
		tokens:        tokens,
		meta:          meta,
		analytics:     analytics,
		metaRepo:      metaRepo,
		analyticsRepo: analyticsRepo,
		cache:         store,
		recorder:      recorder,
		ttls:          ttls,
	}
}

func (s *Service) AdAccounts(ctx context.Context, userID int64) ([]domain.AdAccount, error) {
	return readThrough(ctx, s, userID, readPlan[domain.AdAccount]{
		platform: domain.PlatformMeta,
		resource: ResourceAdAccounts,
		key:      fmt.Sprintf("user:%d:ad_accounts", userID),
		ttl:      s.ttls.AdAccounts,
		fetch: func(ctx context.Context, accessToken string) ([]domain.AdAccount, error) {
			return s.meta.ListAdAccounts(ctx, accessToken)
		},
		persist: func(ctx context.Context, account domain.AdAccount) (int64, error) {
			return s.metaRepo.SaveAdAccount(ctx, userID, account)
		},
		id: func(account domain.AdAccount) string { return account.ID },
	})
}

func (s *Service) Campaigns(ctx context.Context, userID int64, accountID string) ([]domain.Campaign, error) {
	return readThrough(ctx, s, userID, readPlan[domain.Campaign]{
		platform: domain.PlatformMeta,
		resource: ResourceCampaigns,
		key:      fmt.Sprintf("account:%s:campaigns", accountID),
		ttl:      s.ttls.Campaigns,
		fetch: func(ctx context.Context, accessToken string) ([]domain.Campaign, error) {
			return s.meta.ListCampaigns(ctx, accessToken, accountID)
		},
		persist: func(ctx context.Context, campaign domain.Campaign) (int64, error) {
			return s.metaRepo.SaveCampaign(ctx, accountID, campaign)
		},
		id: func(campaign domain.Campaign) string { return campaign.ID },
	})
}

func (s *Service) AdSets(ctx context.Context, userID int64, campaignID string) ([]domain.AdSet, error) {
	return readThrough(ctx, s, userID, readPlan[domain.AdSet]{
		platform: domain.PlatformMeta,
		resource: ResourceAdSets,
		key:      fmt.Sprintf("campaign:%s:adsets", campaignID),
		ttl:      s.ttls.AdSets,
		fetch: func(ctx context.Context, accessToken string) ([]domain.AdSet, error) {
			return s.meta.ListAdSets(ctx, accessToken, campaignID)
		},
		persist: func(ctx context.Context, adSet domain.AdSet) (int64, error) {
			return s.metaRepo.SaveAdSet(ctx, campaignID, adSet)
		},
		id: func(adSet domain.AdSet) string { return adSet.ID },
	})
}

func (s *Service) Ads(ctx context.Context, userID int64, adSetID string) ([]domain.Ad, error) {
	return readThrough(ctx, s, userID, readPlan[domain.Ad]{
		platform: domain.PlatformMeta,
		resource: ResourceAds,
		key:      fmt.Sprintf("adset:%s:ads", adSetID),
		ttl:      s.ttls.Ads,
		fetch: func(ctx context.Context, accessToken string) ([]domain.Ad, error) {
			return s.meta.ListAds(ctx, accessToken, adSetID)
		},
		persist: func(ctx context.Context, ad domain.Ad) (int64, error) {
			return s.metaRepo.SaveAd(ctx, adSetID, ad)
		},
		id: func(ad domain.Ad) string { return ad.ID },
	})
}

// CampaignInsights exige a campanha já gravada; sem ela devolve lista vazia sem ir ao Meta
func (s *Service) CampaignInsights(ctx context.Context, userID int64, campaignID, start, end string) ([]domain.CampaignInsight, error) {
	dateRange, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	var campaignRecordID int64

	return readThrough(ctx, s, userID, readPlan[domain.CampaignInsight]{
		platform: domain.PlatformMeta,
		resource: ResourceCampaignInsights,
		key:      fmt.Sprintf("campaign:%s:insights:%s", campaignID, dateRange.Key()),
		ttl:      s.ttls.CampaignInsights,
		prepare: func(ctx context.Context) (bool, error) {
			recordID, found, err := s.metaRepo.FindCampaignRecordID(ctx, campaignID)
			if err != nil || !found {
				return false, err
			}

			campaignRecordID = recordID
			return true, nil
		},
		fetch: func(ctx context.Context, accessToken string) ([]domain.CampaignInsight, error) {
			return s.meta.GetCampaignInsights(ctx, accessToken, campaignID, dateRange)
		},
		persist: func(ctx context.Context, insight domain.CampaignInsight) (int64, error) {
			return s.metaRepo.SaveCampaignInsight(ctx, campaignRecordID, insight)
		},
		id: func(insight domain.CampaignInsight) string { return insight.DateStart },
	})
}

func (s *Service) AnalyticsAccounts(ctx context.Context, userID int64) ([]domain.AnalyticsAccount, error) {
	return readThrough(ctx, s, userID, readPlan[domain.AnalyticsAccount]{
		platform: domain.PlatformGoogleAnalytics,
		resource: ResourceAnalyticsAccounts,
		key:      fmt.Sprintf("google:accounts:%d", userID),
		ttl:      s.ttls.AnalyticsAccounts,
		fetch: func(ctx context.Context, accessToken string) ([]domain.AnalyticsAccount, error) {
			return s.analytics.ListAccounts(ctx, accessToken)
		},
		persist: func(ctx context.Context, account domain.AnalyticsAccount) (int64, error) {
			return s.analyticsRepo.SaveAccount(ctx, userID, account)
		},
		id: func(account domain.AnalyticsAccount) string { return account.ID },
	})
}

func (s *Service) AnalyticsProperties(ctx context.Context, userID int64, accountID string) ([]domain.AnalyticsProperty, error) {
	return readThrough(ctx, s, userID, readPlan[domain.AnalyticsProperty]{
		platform: domain.PlatformGoogleAnalytics,
		resource: ResourceAnalyticsProperties,
		key:      fmt.Sprintf("google:properties:%s:%d", accountID, userID),
		ttl:      s.ttls.AnalyticsProperties,
		fetch: func(ctx context.Context, accessToken string) ([]domain.AnalyticsProperty, error) {
			return s.analytics.ListProperties(ctx, accessToken, accountID)
		},
		persist: func(ctx context.Context, property domain.AnalyticsProperty) (int64, error) {
			return s.analyticsRepo.SaveProperty(ctx, userID, property)
		},
		id: func(property domain.AnalyticsProperty) string { return property.ID },
	})
}

func (s *Service) AnalyticsReport(ctx context.Context, userID int64, propertyID, start, end string) ([]domain.ReportRow, error) {
	dateRange, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	return readThrough(ctx, s, userID, readPlan[domain.ReportRow]{
		platform: domain.PlatformGoogleAnalytics,
		resource: ResourceAnalyticsReport,
		key:      fmt.Sprintf("google:report:%s:%s:%d", propertyID, dateRange.Key(), userID),
		ttl:      s.ttls.AnalyticsReport,
		fetch: func(ctx context.Context, accessToken string) ([]domain.ReportRow, error) {
			return s.analytics.RunReport(ctx, accessToken, propertyID, dateRange)
		},
		persist: func(ctx context.Context, row domain.ReportRow) (int64, error) {
			return s.analyticsRepo.SaveReportRow(ctx, userID, row)
		},
		id: func(row domain.ReportRow) string { return row.Date },
	})
}
