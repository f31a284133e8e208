package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	LabelMethod  = "method"
	LabelSuccess = "success"
)

type Metrics struct {
	RequestDuration metrics.Histogram
}

func NewMetrics() Metrics {
	return Metrics{
		RequestDuration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: "kubeapi",
			Subsystem: "transport",
			Name:      "request_duration_seconds",
			Help:      "Request duration in seconds.",
			Buckets:   stdprometheus.DefBuckets,
		}, []string{LabelMethod, LabelSuccess}),
	}
}

type instrumentedExecutor struct {
	e Executor
	m Metrics
}

// Instrument records a duration histogram for every request an
// executor makes.
func Instrument(e Executor, m Metrics) Executor {
	return &instrumentedExecutor{e, m}
}

func (i *instrumentedExecutor) Execute(ctx context.Context, spec Spec) (outcome Outcome, err error) {
	defer func(begin time.Time) {
		i.m.RequestDuration.With(
			LabelMethod, spec.Method,
			LabelSuccess, fmt.Sprint(err == nil),
		).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return i.e.Execute(ctx, spec)
}
