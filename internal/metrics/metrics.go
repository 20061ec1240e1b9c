package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder é o que os casos de uso precisam para registrar o ciclo de sincronização
type Recorder interface {
	CacheHit(resource string)
	CacheMiss(resource string)
	RemoteFailure(platform, resource string)
	PersistFailure(resource string)
	CredentialRefresh(platform, outcome string)
	CredentialPersistFailure(platform string)
	RetentionDeleted(table string, rows int64)
}

const (
	RefreshSucceeded = "success"
	RefreshFailed    = "failure"
)

type Collector struct {
	cacheHits                 *prometheus.CounterVec
	cacheMisses               *prometheus.CounterVec
	remoteFailures            *prometheus.CounterVec
	persistFailures           *prometheus.CounterVec
	credentialRefreshes       *prometheus.CounterVec
	credentialPersistFailures *prometheus.CounterVec
	retentionDeleted          *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_sync_cache_hits_total",
			Help: "Reads served from the volatile cache",
		}, []string{"resource"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_sync_cache_misses_total",
			Help: "Reads that went to the remote platform",
		}, []string{"resource"}),
		remoteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_sync_remote_failures_total",
			Help: "Failed remote platform reads",
		}, []string{"platform", "resource"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_sync_persist_failures_total",
			Help: "Entities that could not be written to the durable store",
		}, []string{"resource"}),
		credentialRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_sync_credential_refreshes_total",
			Help: "Access token refresh attempts",
		}, []string{"platform", "outcome"}),
		credentialPersistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_sync_credential_persist_failures_total",
			Help: "Refreshed credentials that could not be written to the durable store",
		}, []string{"platform"}),
		retentionDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_sync_retention_deleted_rows_total",
			Help: "Rows removed by the retention job",
		}, []string{"table"}),
	}

	reg.MustRegister(
		c.cacheHits,
		c.cacheMisses,
		c.remoteFailures,
		c.persistFailures,
		c.credentialRefreshes,
		c.credentialPersistFailures,
		c.retentionDeleted,
	)

	return c
}

func (c *Collector) CacheHit(resource string) {
	c.cacheHits.WithLabelValues(resource).Inc()
}

func (c *Collector) CacheMiss(resource string) {
	c.cacheMisses.WithLabelValues(resource).Inc()
}

func (c *Collector) RemoteFailure(platform, resource string) {
	c.remoteFailures.WithLabelValues(platform, resource).Inc()
}

func (c *Collector) PersistFailure(resource string) {
	c.persistFailures.WithLabelValues(resource).Inc()
}

func (c *Collector) CredentialRefresh(platform, outcome string) {
	c.credentialRefreshes.WithLabelValues(platform, outcome).Inc()
}

func (c *Collector) CredentialPersistFailure(platform string) {
	c.credentialPersistFailures.WithLabelValues(platform).Inc()
}

func (c *Collector) RetentionDeleted(table string, rows int64) {
	c.retentionDeleted.WithLabelValues(table).Add(float64(rows))
}

// Handler expõe o registry no formato de scrape do Prometheus
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop descarta tudo; usado quando as métricas estão desligadas
type Nop struct{}

func (Nop) CacheHit(string) {}
func (Nop) CacheMiss(string) {}
func (Nop) RemoteFailure(string, string) {}
func (Nop) PersistFailure(string) {}
func (Nop) CredentialRefresh(string, string) {}
func (Nop) CredentialPersistFailure(string) {}
func (Nop) RetentionDeleted(string, int64) {}
