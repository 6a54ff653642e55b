// Package metrics provides Prometheus metrics for the status poller.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const namespace = "homework_bot"

var (
	// CyclesTotal counts finished poll cycles by outcome.
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Total number of poll cycles by outcome",
		},
		[]string{"outcome"},
	)

	// CycleErrorsTotal counts failed cycles by error kind.
	CycleErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_errors_total",
			Help:      "Total number of failed poll cycles by error kind",
		},
		[]string{"kind"},
	)

	// FetchDuration measures status API request latency.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of homework status API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"result"},
	)

	// NotificationsTotal counts outbound Telegram messages.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of Telegram delivery attempts by result",
		},
		[]string{"result"},
	)
)

// Cycle outcomes.
const (
	OutcomeNotified  = "notified"
	OutcomeNoUpdates = "no_updates"
	OutcomeFailed    = "failed"
)

// RecordCycle records a finished cycle.
func RecordCycle(outcome string) {
	CyclesTotal.WithLabelValues(outcome).Inc()
}

// RecordCycleError records the kind of error that ended a cycle.
func RecordCycleError(kind string) {
	CycleErrorsTotal.WithLabelValues(kind).Inc()
}

// ObserveFetch records one status API request.
func ObserveFetch(err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	FetchDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordNotification records one delivery attempt.
func RecordNotification(err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	NotificationsTotal.WithLabelValues(result).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, log *logrus.Entry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Metrics server shutdown failed")
		}
	}()

	log.WithField("addr", addr).Info("Metrics server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
