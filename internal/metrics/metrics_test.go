package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue soma os valores da família com os labels informados
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, metric := range family.GetMetric() {
			matches := true
			for _, label := range metric.GetLabel() {
				if want, ok := labels[label.GetName()]; ok && want != label.GetValue() {
					matches = false
				}
			}
			if matches {
				total += metric.GetCounter().GetValue()
			}
		}
	}

	return total
}

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.CacheHit("ad_accounts")
	c.CacheHit("ad_accounts")
	c.CacheMiss("campaigns")
	c.RemoteFailure("meta", "campaigns")
	c.PersistFailure("ads")
	c.CredentialRefresh("google_analytics", RefreshSucceeded)
	c.CredentialRefresh("google_analytics", RefreshFailed)
	c.CredentialPersistFailure("google_analytics")
	c.RetentionDeleted("campaign_insights", 12)

	assert.Equal(t, float64(2), counterValue(t, reg, "funnel_sync_cache_hits_total", map[string]string{"resource": "ad_accounts"}))
	assert.Equal(t, float64(1), counterValue(t, reg, "funnel_sync_cache_misses_total", map[string]string{"resource": "campaigns"}))
	assert.Equal(t, float64(1), counterValue(t, reg, "funnel_sync_remote_failures_total", map[string]string{"platform": "meta"}))
	assert.Equal(t, float64(1), counterValue(t, reg, "funnel_sync_persist_failures_total", map[string]string{"resource": "ads"}))
	assert.Equal(t, float64(1), counterValue(t, reg, "funnel_sync_credential_refreshes_total", map[string]string{"outcome": RefreshFailed}))
	assert.Equal(t, float64(1), counterValue(t, reg, "funnel_sync_credential_persist_failures_total", nil))
	assert.Equal(t, float64(12), counterValue(t, reg, "funnel_sync_retention_deleted_rows_total", nil))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg).CacheHit("ads")

	server := httptest.NewServer(Handler(reg))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `funnel_sync_cache_hits_total{resource="ads"} 1`))
}
