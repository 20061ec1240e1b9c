package gaclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-sync-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.Google{
		ClientID:       "client",
		ClientSecret:   "secret",
		RedirectURI:    "https://app/callback",
		AuthURL:        server.URL + "/o/oauth2/v2/auth",
		TokenURL:       server.URL + "/token",
		AdminURL:       server.URL + "/v1alpha",
		DataURL:        server.URL + "/v1beta",
		TimeoutSeconds: 5,
	})
}

func TestGoogleClient_AuthURL(t *testing.T) {
	client := NewClient(config.Google{
		ClientID:    "client",
		RedirectURI: "https://app/callback",
		AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
	})

	parsed, err := url.Parse(client.AuthURL("state123"))
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "state123", query.Get("state"))
	assert.Contains(t, query.Get("scope"), "https://www.googleapis.com/auth/analytics.readonly")
}

func TestGoogleClient_Tokens(t *testing.T) {
	t.Run("Troca de código", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/token", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "abc", r.PostForm.Get("code"))
			assert.Equal(t, "https://app/callback", r.PostForm.Get("redirect_uri"))

			w.Write([]byte(`{"access_token":"ya29.T1","refresh_token":"1//R1","expires_in":3599,"token_type":"Bearer"}`))
		})

		token, err := client.ExchangeCode(context.Background(), "abc", "")

		require.NoError(t, err)
		assert.Equal(t, "ya29.T1", token.AccessToken)
		assert.Equal(t, "1//R1", token.RefreshToken)
		assert.Equal(t, int64(3599), token.ExpiresIn)
	})

	t.Run("Refresh sem refresh_token na resposta", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "1//R1", r.PostForm.Get("refresh_token"))

			w.Write([]byte(`{"access_token":"ya29.T2","expires_in":3599}`))
		})

		token, err := client.RefreshToken(context.Background(), "1//R1")

		require.NoError(t, err)
		assert.Equal(t, "ya29.T2", token.AccessToken)
		assert.Empty(t, token.RefreshToken)
	})

	t.Run("Refresh token revogado", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`))
		})

		_, err := client.RefreshToken(context.Background(), "1//R1")

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "invalid_grant", apiErr.Status)
		assert.Equal(t, "Token has been expired or revoked.", apiErr.Message)
		assert.True(t, apiErr.IsTokenRejected())
	})
}

func TestGoogleClient_ListProperties(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1alpha/properties", r.URL.Path)
		assert.Equal(t, "parent:accounts/123", r.URL.Query().Get("filter"))
		assert.Equal(t, "Bearer ya29.T1", r.Header.Get("Authorization"))

		w.Write([]byte(`{"properties":[{"name":"properties/456","displayName":"Site","parent":"accounts/123"}]}`))
	})

	properties, err := client.ListProperties(context.Background(), "ya29.T1", "accounts/123")

	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "properties/456", properties[0].Name)
}

func TestGoogleClient_ListAccountsUnauthenticated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401,"message":"Request had invalid authentication credentials.","status":"UNAUTHENTICATED"}}`))
	})

	_, err := client.ListAccounts(context.Background(), "ya29.expired")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "UNAUTHENTICATED", apiErr.Status)
	assert.True(t, apiErr.IsTokenRejected())
}

func TestGoogleClient_RunReport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/properties/456:runReport", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"dateRanges":[{"startDate":"2024-01-01","endDate":"2024-01-02"}],
			"dimensions":[{"name":"date"}],
			"metrics":[{"name":"sessions"},{"name":"activeUsers"},{"name":"newUsers"},{"name":"engagementRate"},{"name":"conversions"}]
		}`, string(body))

		w.Write([]byte(`{
			"dimensionHeaders":[{"name":"date"}],
			"metricHeaders":[{"name":"sessions","type":"TYPE_INTEGER"},{"name":"activeUsers"},{"name":"newUsers"},{"name":"engagementRate"},{"name":"conversions"}],
			"rows":[
				{"dimensionValues":[{"value":"20240101"}],"metricValues":[{"value":"120"},{"value":"80"},{"value":"30"},{"value":"0.61"},{"value":"4"}]},
				{"dimensionValues":[{"value":"20240102"}],"metricValues":[{"value":"90"}]}
			],
			"rowCount":2
		}`))
	})

	rows, err := client.RunReport(context.Background(), "ya29.T1", "properties/456", "2024-01-01", "2024-01-02")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "20240101", rows[0].Date)
	assert.Equal(t, "120", rows[0].Metrics["sessions"])
	assert.Equal(t, "0.61", rows[0].Metrics["engagementRate"])
	assert.Equal(t, "90", rows[1].Metrics["sessions"])
	_, ok := rows[1].Metrics["activeUsers"]
	assert.False(t, ok)
}

func TestParseReportRows(t *testing.T) {
	rows, err := parseReportRows([]byte(`{"metricHeaders":[{"name":"sessions"}]}`))
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = parseReportRows([]byte(`{"rows":`))
	assert.Error(t, err)
}
