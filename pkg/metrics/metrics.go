package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	courseScraper = "course_scraper"

	flowerTasksSubmittedTotal = "flower_tasks_submitted_total"

	submitStatusLabel = "status"
)

var flowerTasksSubmittedMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: courseScraper,
		Name:      flowerTasksSubmittedTotal,
		Help:      "number of scraping tasks submitted to the task dashboard",
	},
	[]string{submitStatusLabel},
)

// IncreaseFlowerTasksSubmitted records a task submission outcome
// ("accepted" or "failed").
func IncreaseFlowerTasksSubmitted(status string) {
	flowerTasksSubmittedMetric.With(prometheus.Labels{submitStatusLabel: status}).Inc()
}

func init() {
	prometheus.MustRegister(flowerTasksSubmittedMetric)
}

// NewPrometheusMetricsHandler returns the exposition handler served by the
// metrics server.
func NewPrometheusMetricsHandler() http.Handler {
	return promhttp.Handler()
}
