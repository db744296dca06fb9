// Package metrics exposes business and HTTP counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dukasync/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "dukasync"

// Collector implements service.MetricsRecorder and the HTTP request observer.
type Collector struct {
	logins          *prometheus.CounterVec
	registrations   *prometheus.CounterVec
	registrationOps *prometheus.CounterVec
	roleResolutions *prometheus.CounterVec
	guardDecisions  *prometheus.CounterVec
	onboarding      *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// NewCollector creates the counters and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registrations by account type and outcome.",
		}, []string{"role", "outcome"}),
		registrationOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registration_steps_total",
			Help:      "Registration pipeline steps by step and outcome.",
		}, []string{"step", "outcome"}),
		roleResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_resolutions_total",
			Help:      "Profile lookups by outcome.",
		}, []string{"outcome"}),
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guard_decisions_total",
			Help:      "Route guard evaluations by final state.",
		}, []string{"state"}),
		onboarding: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "onboarding_calls_total",
			Help:      "Onboarding endpoint calls by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.logins,
		c.registrations,
		c.registrationOps,
		c.roleResolutions,
		c.guardDecisions,
		c.onboarding,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

func (c *Collector) ObserveLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObserveRegistration(role, outcome string) {
	c.registrations.WithLabelValues(role, outcome).Inc()
}

func (c *Collector) ObserveRegistrationStep(step, outcome string) {
	c.registrationOps.WithLabelValues(step, outcome).Inc()
}

func (c *Collector) ObserveRoleResolution(outcome string) {
	c.roleResolutions.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObserveGuardDecision(state string) {
	c.guardDecisions.WithLabelValues(state).Inc()
}

func (c *Collector) ObserveOnboarding(outcome string) {
	c.onboarding.WithLabelValues(outcome).Inc()
}

// ObserveHTTPRequest records one served request. route is the registered path pattern.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the gathered metrics in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry creates the process registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func asRegisterer(reg *prometheus.Registry) prometheus.Registerer { return reg }

func asGatherer(reg *prometheus.Registry) prometheus.Gatherer { return reg }

func asRecorder(c *Collector) service.MetricsRecorder { return c }

func asRequestObserver(c *Collector) service.RequestObserver { return c }

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		asRegisterer,
		asGatherer,
		NewCollector,
		asRecorder,
		asRequestObserver,
		fx.Annotate(
			Handler,
			fx.ResultTags(`name:"metrics"`),
		),
	),
)
