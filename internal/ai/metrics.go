package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var extractionCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ai_extractions_total",
	Help: "How many AI extraction calls completed successfully.",
})
