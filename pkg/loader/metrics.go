package loader

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	downloadCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeprint_fetch_download_count",
		Help: "Number of route pages downloaded",
	}, []string{"host"})
	errorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeprint_fetch_error_count",
		Help: "Number of route page fetches that failed",
	}, []string{"host"})
)

func init() {
	prometheus.MustRegister(downloadCount, errorCount)
}
