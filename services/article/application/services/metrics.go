package services

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/ghuser/medsupply/services/article"

// articleMetrics are the domain counters exported through the global OTel
// meter provider (and so on /metrics).
type articleMetrics struct {
	articlesCreated metric.Int64Counter
	usageRecorded   metric.Int64Counter
}

func newArticleMetrics() articleMetrics {
	meter := otel.Meter(meterName)

	created, err := meter.Int64Counter("article.created",
		metric.WithDescription("Articles registered"),
		metric.WithUnit("{article}"),
	)
	if err != nil {
		created = noop.Int64Counter{}
	}

	used, err := meter.Int64Counter("article.usage.recorded",
		metric.WithDescription("Stock units consumed, summed over recorded usage events"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		used = noop.Int64Counter{}
	}

	return articleMetrics{articlesCreated: created, usageRecorded: used}
}
