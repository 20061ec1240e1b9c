package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/domain"
)

var ErrEmptyToken = errors.New("meta returned an empty access token")

// ExchangeCode troca o código do fluxo OAuth por um token de curta duração
func (c *MetaClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*metadomain.TokenResponse, error) {
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	params := url.Values{}
	params.Add("client_id", c.appID)
	params.Add("client_secret", c.appSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	return c.requestToken(ctx, params)
}

// ExchangeLongLivedToken troca um token de curta duração por um de longa duração
func (c *MetaClient) ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (*metadomain.TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, errors.New("short lived token is required")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.appID)
	params.Add("client_secret", c.appSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	tokenResp, err := c.requestToken(ctx, params)
	if err != nil {
		return nil, err
	}

	logrus.WithField("expires_in", FormatDuration(tokenResp.ExpiresIn)).
		Info("metaclient: long lived token obtained")

	return tokenResp, nil
}

func (c *MetaClient) requestToken(ctx context.Context, params url.Values) (*metadomain.TokenResponse, error) {
	var tokenResp metadomain.TokenResponse
	if err := c.get(ctx, "oauth/access_token", params, &tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}
