package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/funnel-sync-api/internal/api/handler/router"
	"github.com/vfg2006/funnel-sync-api/internal/metrics"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/syncing"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(gatherer),
		},
	}
}

func Integrations(service credentialing.CredentialService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations/:platform/connect",
			Method:  http.MethodPost,
			Handler: ConnectPlatform(service),
		},
		{
			Path:    "/v1/integrations/:platform/status",
			Method:  http.MethodGet,
			Handler: PlatformStatus(service),
		},
		{
			Path:    "/v1/google-analytics/auth-url",
			Method:  http.MethodGet,
			Handler: GoogleAuthURL(service),
		},
	}
}

func Meta(service syncing.SyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/ad-accounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
		{
			Path:    "/v1/meta/ad-accounts/:id/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/meta/campaigns/:id/ad-sets",
			Method:  http.MethodGet,
			Handler: ListAdSets(service),
		},
		{
			Path:    "/v1/meta/campaigns/:id/insights",
			Method:  http.MethodGet,
			Handler: GetCampaignInsights(service),
		},
		{
			Path:    "/v1/meta/ad-sets/:id/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
	}
}

func GoogleAnalytics(service syncing.SyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/google-analytics/accounts",
			Method:  http.MethodGet,
			Handler: ListAnalyticsAccounts(service),
		},
		{
			Path:    "/v1/google-analytics/accounts/:id/properties",
			Method:  http.MethodGet,
			Handler: ListAnalyticsProperties(service),
		},
		{
			Path:    "/v1/google-analytics/properties/:id/report",
			Method:  http.MethodGet,
			Handler: GetAnalyticsReport(service),
		},
	}
}

func Retention(runner RetentionRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/retention/run",
			Method:      http.MethodPost,
			Handler:     RunRetention(runner),
			Middlewares: []func(http.Handler) http.Handler{noStore},
		},
	}
}

// noStore impede que proxies guardem a resposta de uma ação manual
func noStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
