package gaclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	gadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var Scopes = []string{
	"https://www.googleapis.com/auth/analytics.readonly",
	"https://www.googleapis.com/auth/analytics",
	"https://www.googleapis.com/auth/analytics.edit",
}

type Client interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code, redirectURI string) (*gadomain.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*gadomain.TokenResponse, error)
	ListAccounts(ctx context.Context, accessToken string) ([]gadomain.Account, error)
	ListProperties(ctx context.Context, accessToken, accountID string) ([]gadomain.Property, error)
	RunReport(ctx context.Context, accessToken, propertyID, startDate, endDate string) ([]gadomain.ReportRow, error)
}

type GoogleClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	authURL      string
	tokenURL     string
	adminURL     string
	dataURL      string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

func NewClient(cfg config.Google) *GoogleClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &GoogleClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		authURL:      cfg.AuthURL,
		tokenURL:     cfg.TokenURL,
		adminURL:     strings.TrimSuffix(cfg.AdminURL, "/"),
		dataURL:      strings.TrimSuffix(cfg.DataURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(limit, 1),
	}
}

// AuthURL monta a URL de consentimento com acesso offline para receber refresh token
func (c *GoogleClient) AuthURL(state string) string {
	params := url.Values{}
	params.Add("client_id", c.clientID)
	params.Add("redirect_uri", c.redirectURI)
	params.Add("response_type", "code")
	params.Add("access_type", "offline")
	params.Add("prompt", "consent")
	params.Add("scope", strings.Join(Scopes, " "))
	params.Add("state", state)

	return c.authURL + "?" + params.Encode()
}

func (c *GoogleClient) do(ctx context.Context, method, requestURL, accessToken string, body io.Reader, contentType string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s", req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, data)
		logrus.WithFields(logrus.Fields{
			"path":        req.URL.Path,
			"status_code": resp.StatusCode,
			"status":      apiErr.Status,
		}).Warn("gaclient: request failed")
		return nil, apiErr
	}

	return data, nil
}

func (c *GoogleClient) getJSON(ctx context.Context, requestURL, accessToken string, out any) error {
	data, err := c.do(ctx, http.MethodGet, requestURL, accessToken, nil, "")
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

func (c *GoogleClient) postJSON(ctx context.Context, requestURL, accessToken string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}

	return c.do(ctx, http.MethodPost, requestURL, accessToken, bytes.NewReader(body), "application/json")
}

// newAPIError entende os dois formatos de erro do Google:
// {"error":"invalid_grant","error_description":"..."} e {"error":{"code":401,"status":"...","message":"..."}}
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: string(body)}

	errField := gjson.GetBytes(body, "error")
	switch {
	case errField.IsObject():
		apiErr.Status = errField.Get("status").String()
		apiErr.Message = errField.Get("message").String()
	case errField.Exists():
		apiErr.Status = errField.String()
		apiErr.Message = gjson.GetBytes(body, "error_description").String()
	}

	return apiErr
}
