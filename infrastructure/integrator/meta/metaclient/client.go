package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	adAccountFields = "id,name,account_status,amount_spent,currency,business_name"
	campaignFields  = "id,name,objective,status,created_time,start_time,stop_time,daily_budget,lifetime_budget"
	adSetFields     = "id,name,status,daily_budget,lifetime_budget,bid_strategy,start_time,end_time"
	adFields        = "id,name,status,created_time"
	insightFields   = "campaign_id,impressions,clicks,spend,cpc,ctr,reach,frequency,unique_clicks,cost_per_unique_click"
)

type Client interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (*metadomain.TokenResponse, error)
	ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (*metadomain.TokenResponse, error)
	ListAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
	ListCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error)
	ListAdSets(ctx context.Context, accessToken, campaignID string) ([]metadomain.AdSet, error)
	ListAds(ctx context.Context, accessToken, adSetID string) ([]metadomain.Ad, error)
	GetCampaignInsights(ctx context.Context, accessToken, campaignID, since, until string) ([]metadomain.CampaignInsight, error)
}

type MetaClient struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg config.Meta) *MetaClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &MetaClient{
		baseURL:    cfg.URL,
		appID:      cfg.AppID,
		appSecret:  cfg.AppSecret,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// get executa um GET no Graph API e decodifica o corpo em out
func (c *MetaClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limiter")
	}

	requestURL := c.baseURL + "/" + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to call %s", path)
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":        path,
			"status_code": resp.StatusCode,
		}).WithError(err).Warn("metaclient: request failed")
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", path)
	}

	return nil
}

// HandleResponse lê o corpo e converte respostas não 200 em *APIError
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil {
		apiErr.Response = &errorResp
	}

	return nil, apiErr
}
