// Package metrics counts signup validation outcomes for Prometheus.
//
// A nil *Metrics is valid and records nothing, so callers can pass the
// result of a disabled configuration straight through.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/gameon/internal/signup"
)

const namespace = "gameon"

// Result label values.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Outcome label values.
const (
	OutcomeValidated = "validated"
	OutcomeRejected  = "rejected"
)

// Metrics owns a registry and the signup counters registered on it.
type Metrics struct {
	registry *prometheus.Registry

	fieldChecks *prometheus.CounterVec
	submissions *prometheus.CounterVec
	panels      *prometheus.CounterVec
}

type Option func(*options)

type options struct {
	runtime bool
}

// WithoutRuntimeCollectors skips the Go and process collectors.
func WithoutRuntimeCollectors() Option {
	return func(o *options) { o.runtime = false }
}

// New registers the signup counters on a fresh registry.
func New(opts ...Option) *Metrics {
	o := options{runtime: true}
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	if o.runtime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		fieldChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "signup",
				Name:      "field_checks_total",
				Help:      "Field validations by field id and result.",
			},
			[]string{"field", "result"}, // valid or invalid
		),
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "signup",
				Name:      "submissions_total",
				Help:      "Signup form submissions by gate outcome.",
			},
			[]string{"outcome"}, // validated or rejected
		),
		panels: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "modal",
				Name:      "panel_transitions_total",
				Help:      "Modal panel show and hide transitions.",
			},
			[]string{"panel", "action"}, // show or hide
		),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
// A nil Metrics answers 404.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSubmission counts one gate run.
func (m *Metrics) ObserveSubmission(validated bool) {
	if m == nil {
		return
	}
	outcome := OutcomeRejected
	if validated {
		outcome = OutcomeValidated
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// Display decorates next so every Show or Clear is counted once.
func (m *Metrics) Display(next signup.DisplayPort) signup.DisplayPort {
	if m == nil {
		return next
	}
	return display{next: next, checks: m.fieldChecks}
}

// Panels decorates next with transition counters.
func (m *Metrics) Panels(next signup.PanelPort) signup.PanelPort {
	if m == nil {
		return next
	}
	return panels{next: next, transitions: m.panels}
}

type display struct {
	next   signup.DisplayPort
	checks *prometheus.CounterVec
}

func (d display) Show(field signup.FieldID, message string) {
	d.checks.WithLabelValues(string(field), ResultInvalid).Inc()
	d.next.Show(field, message)
}

func (d display) Clear(field signup.FieldID) {
	d.checks.WithLabelValues(string(field), ResultValid).Inc()
	d.next.Clear(field)
}

type panels struct {
	next        signup.PanelPort
	transitions *prometheus.CounterVec
}

func (p panels) Show(panel signup.Panel) {
	p.transitions.WithLabelValues(string(panel), "show").Inc()
	p.next.Show(panel)
}

func (p panels) Hide(panel signup.Panel) {
	p.transitions.WithLabelValues(string(panel), "hide").Inc()
	p.next.Hide(panel)
}
