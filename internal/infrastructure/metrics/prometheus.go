package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const namespace = "mealcache"

var _ usecase.CacheMetrics = (*Prom)(nil)

// Prom はキャッシュの参照結果と失敗をPrometheusのカウンタに記録する
type Prom struct {
	lookups  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by layer and result",
		}, []string{"layer", "result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_failures_total",
			Help:      "Image loads that failed, by kind",
		}, []string{"kind"}),
	}
	reg.MustRegister(p.lookups, p.failures)
	return p
}

func (p *Prom) ObserveLookup(layer usecase.CacheLayer, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.lookups.WithLabelValues(string(layer), result).Inc()
}

func (p *Prom) IncFailure(kind usecase.FailureKind) {
	p.failures.WithLabelValues(string(kind)).Inc()
}

// CacheInfoSource は GetCacheInfo を提供するもの
type CacheInfoSource interface {
	GetCacheInfo(ctx context.Context) (domain.CacheInfo, error)
}

// cacheInfoCollector はスクレイプのたびにキャッシュの使用量を読み出す
type cacheInfoCollector struct {
	source CacheInfoSource

	memoryImages *prometheus.Desc
	memoryBytes  *prometheus.Desc
	diskEntries  *prometheus.Desc
	diskBytes    *prometheus.Desc
	signedURLs   *prometheus.Desc
}

func NewCacheInfoCollector(source CacheInfoSource) prometheus.Collector {
	return &cacheInfoCollector{
		source:       source,
		memoryImages: prometheus.NewDesc(namespace+"_memory_images", "Decoded images held in memory", nil, nil),
		memoryBytes:  prometheus.NewDesc(namespace+"_memory_bytes", "Bytes held by the in-memory image cache", nil, nil),
		diskEntries:  prometheus.NewDesc(namespace+"_disk_entries", "Responses held by the disk cache", nil, nil),
		diskBytes:    prometheus.NewDesc(namespace+"_disk_bytes", "Bytes held by the disk cache", nil, nil),
		signedURLs:   prometheus.NewDesc(namespace+"_signed_urls", "Signed URLs held by the signed url cache", nil, nil),
	}
}

func (c *cacheInfoCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.memoryImages
	ch <- c.memoryBytes
	ch <- c.diskEntries
	ch <- c.diskBytes
	ch <- c.signedURLs
}

func (c *cacheInfoCollector) Collect(ch chan<- prometheus.Metric) {
	info, err := c.source.GetCacheInfo(context.Background())
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.signedURLs, err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.memoryImages, prometheus.GaugeValue, float64(info.MemoryImageCount))
	ch <- prometheus.MustNewConstMetric(c.memoryBytes, prometheus.GaugeValue, float64(info.MemoryBytes))
	ch <- prometheus.MustNewConstMetric(c.diskEntries, prometheus.GaugeValue, float64(info.DiskEntryCount))
	ch <- prometheus.MustNewConstMetric(c.diskBytes, prometheus.GaugeValue, float64(info.DiskCacheSizeBytes))
	ch <- prometheus.MustNewConstMetric(c.signedURLs, prometheus.GaugeValue, float64(info.SignedURLCount))
}

// Handler は /metrics 用のHTTPハンドラを返す
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
