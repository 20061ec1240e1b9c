package gaclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	gadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/google/domain"
)

var ErrEmptyToken = errors.New("google returned an empty access token")

func (c *GoogleClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*gadomain.TokenResponse, error) {
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	if redirectURI == "" {
		redirectURI = c.redirectURI
	}

	form := url.Values{}
	form.Add("code", code)
	form.Add("client_id", c.clientID)
	form.Add("client_secret", c.clientSecret)
	form.Add("redirect_uri", redirectURI)
	form.Add("grant_type", "authorization_code")

	return c.requestToken(ctx, form)
}

// RefreshToken troca o refresh token por um novo access token. O Google
// normalmente omite refresh_token nessa resposta.
func (c *GoogleClient) RefreshToken(ctx context.Context, refreshToken string) (*gadomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token is required")
	}

	form := url.Values{}
	form.Add("refresh_token", refreshToken)
	form.Add("client_id", c.clientID)
	form.Add("client_secret", c.clientSecret)
	form.Add("grant_type", "refresh_token")

	return c.requestToken(ctx, form)
}

func (c *GoogleClient) requestToken(ctx context.Context, form url.Values) (*gadomain.TokenResponse, error) {
	data, err := c.do(ctx, http.MethodPost, c.tokenURL, "", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	var tokenResp gadomain.TokenResponse
	if err := json.Unmarshal(data, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	if tokenResp.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	return &tokenResp, nil
}
