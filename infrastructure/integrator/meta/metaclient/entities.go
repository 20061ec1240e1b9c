package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/domain"
)

// As listagens retornam apenas a primeira página de cada edge

func (c *MetaClient) ListAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	var response metadomain.ListResponse[metadomain.AdAccount]
	if err := c.get(ctx, "me/adaccounts", fieldParams(accessToken, adAccountFields), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *MetaClient) ListCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error) {
	var response metadomain.ListResponse[metadomain.Campaign]
	if err := c.get(ctx, url.PathEscape(accountID)+"/campaigns", fieldParams(accessToken, campaignFields), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *MetaClient) ListAdSets(ctx context.Context, accessToken, campaignID string) ([]metadomain.AdSet, error) {
	var response metadomain.ListResponse[metadomain.AdSet]
	if err := c.get(ctx, url.PathEscape(campaignID)+"/adsets", fieldParams(accessToken, adSetFields), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *MetaClient) ListAds(ctx context.Context, accessToken, adSetID string) ([]metadomain.Ad, error) {
	var response metadomain.ListResponse[metadomain.Ad]
	if err := c.get(ctx, url.PathEscape(adSetID)+"/ads", fieldParams(accessToken, adFields), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetCampaignInsights busca uma linha por dia (time_increment=1) no intervalo
func (c *MetaClient) GetCampaignInsights(ctx context.Context, accessToken, campaignID, since, until string) ([]metadomain.CampaignInsight, error) {
	params := fieldParams(accessToken, insightFields)
	params.Add("time_range", `{"since":"`+since+`","until":"`+until+`"}`)
	params.Add("time_increment", "1")

	var response metadomain.ListResponse[metadomain.CampaignInsight]
	if err := c.get(ctx, url.PathEscape(campaignID)+"/insights", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func fieldParams(accessToken, fields string) url.Values {
	params := url.Values{}
	params.Add("fields", fields)
	params.Add("access_token", accessToken)

	return params
}
