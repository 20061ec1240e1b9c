package meta

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/pkg/utils"
)

// O Meta não emite refresh token: credencial expirada exige nova conexão
var ErrRefreshNotSupported = errors.New("meta does not support token refresh")

type MetaIntegrator struct {
	cfg    config.Meta
	Client metaclient.Client
}

func New(cfg config.Meta, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ExchangeCode troca o código OAuth e, se configurado, promove para token de longa duração
func (s *MetaIntegrator) ExchangeCode(ctx context.Context, code, redirectURI string) (domain.TokenSet, error) {
	tokenResp, err := s.Client.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return domain.TokenSet{}, err
	}

	if s.cfg.ExchangeLongLived {
		longLived, err := s.Client.ExchangeLongLivedToken(ctx, tokenResp.AccessToken)
		if err != nil {
			logrus.WithError(err).Warn("meta: failed to exchange long lived token, keeping short lived token")
		} else {
			tokenResp = longLived
		}
	}

	return s.FactoryTokenSet(tokenResp), nil
}

func (s *MetaIntegrator) RefreshToken(_ context.Context, _ string) (domain.TokenSet, error) {
	return domain.TokenSet{}, ErrRefreshNotSupported
}

func (s *MetaIntegrator) ListAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error) {
	accounts, err := s.Client.ListAdAccounts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, FactoryAdAccount(account))
	}

	return result, nil
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, accessToken, accountID string) ([]domain.Campaign, error) {
	campaigns, err := s.Client.ListCampaigns(ctx, accessToken, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, FactoryCampaign(accountID, campaign))
	}

	return result, nil
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, accessToken, campaignID string) ([]domain.AdSet, error) {
	adSets, err := s.Client.ListAdSets(ctx, accessToken, campaignID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdSet, 0, len(adSets))
	for _, adSet := range adSets {
		result = append(result, FactoryAdSet(campaignID, adSet))
	}

	return result, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, accessToken, adSetID string) ([]domain.Ad, error) {
	ads, err := s.Client.ListAds(ctx, accessToken, adSetID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		result = append(result, domain.Ad{
			ID:          ad.ID,
			AdSetID:     adSetID,
			Name:        ad.Name,
			Status:      ad.Status,
			CreatedTime: ad.CreatedTime,
		})
	}

	return result, nil
}

func (s *MetaIntegrator) GetCampaignInsights(ctx context.Context, accessToken, campaignID string, dateRange domain.DateRange) ([]domain.CampaignInsight, error) {
	insights, err := s.Client.GetCampaignInsights(ctx, accessToken, campaignID, dateRange.Since(), dateRange.Until())
	if err != nil {
		return nil, err
	}

	result := make([]domain.CampaignInsight, 0, len(insights))
	for _, insight := range insights {
		result = append(result, FactoryCampaignInsight(campaignID, insight))
	}

	return result, nil
}

// FactoryTokenSet usa META_DEFAULT_TOKEN_LIFETIME_DAYS quando expires_in não vem na resposta
func (s *MetaIntegrator) FactoryTokenSet(tokenResp *metadomain.TokenResponse) domain.TokenSet {
	expiresIn := tokenResp.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = int64((time.Duration(s.cfg.DefaultTokenLifetimeDays) * 24 * time.Hour) / time.Second)
	}

	return domain.TokenSet{
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
		ExpiresIn:   expiresIn,
	}
}

func FactoryAdAccount(account metadomain.AdAccount) domain.AdAccount {
	return domain.AdAccount{
		ID:           account.ID,
		Name:         account.Name,
		Status:       account.AccountStatus,
		AmountSpent:  parseFloat("amount_spent", account.ID, account.AmountSpent),
		Currency:     account.Currency,
		BusinessName: account.BusinessName,
	}
}

func FactoryCampaign(accountID string, campaign metadomain.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:             campaign.ID,
		AccountID:      accountID,
		Name:           campaign.Name,
		Objective:      campaign.Objective,
		Status:         campaign.Status,
		DailyBudget:    parseFloat("daily_budget", campaign.ID, campaign.DailyBudget),
		LifetimeBudget: parseFloat("lifetime_budget", campaign.ID, campaign.LifetimeBudget),
		CreatedTime:    campaign.CreatedTime,
		StartTime:      campaign.StartTime,
		StopTime:       campaign.StopTime,
	}
}

func FactoryAdSet(campaignID string, adSet metadomain.AdSet) domain.AdSet {
	return domain.AdSet{
		ID:             adSet.ID,
		CampaignID:     campaignID,
		Name:           adSet.Name,
		Status:         adSet.Status,
		BidStrategy:    adSet.BidStrategy,
		DailyBudget:    parseFloat("daily_budget", adSet.ID, adSet.DailyBudget),
		LifetimeBudget: parseFloat("lifetime_budget", adSet.ID, adSet.LifetimeBudget),
		StartTime:      adSet.StartTime,
		EndTime:        adSet.EndTime,
	}
}

// FactoryCampaignInsight zera métricas ausentes ou inválidas
func FactoryCampaignInsight(campaignID string, insight metadomain.CampaignInsight) domain.CampaignInsight {
	if insight.CampaignID != "" {
		campaignID = insight.CampaignID
	}

	return domain.CampaignInsight{
		CampaignID:         campaignID,
		DateStart:          insight.DateStart,
		DateStop:           insight.DateStop,
		Impressions:        parseInt("impressions", campaignID, insight.Impressions),
		Clicks:             parseInt("clicks", campaignID, insight.Clicks),
		Spend:              parseFloat("spend", campaignID, insight.Spend),
		CPC:                parseFloat("cpc", campaignID, insight.CPC),
		CTR:                parseFloat("ctr", campaignID, insight.CTR),
		Reach:              parseInt("reach", campaignID, insight.Reach),
		Frequency:          parseFloat("frequency", campaignID, insight.Frequency),
		UniqueClicks:       parseInt("unique_clicks", campaignID, insight.UniqueClicks),
		CostPerUniqueClick: parseFloat("cost_per_unique_click", campaignID, insight.CostPerUniqueClick),
	}
}

func parseFloat(field, entityID, value string) float64 {
	parsed, err := utils.ParseFloat(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"field":     field,
			"value":     value,
		}).Warn("meta: error converting value to float, using 0")
		return 0
	}

	return parsed
}

func parseInt(field, entityID, value string) int64 {
	parsed, err := utils.ParseInt(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"field":     field,
			"value":     value,
		}).Warn("meta: error converting value to int, using 0")
		return 0
	}

	return parsed
}
