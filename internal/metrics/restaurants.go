// Package metrics exposes domain metrics for the restaurant form.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"restaurantform/internal/model"
)

// Restaurants holds the domain collectors. A nil *Restaurants is valid and records nothing.
type Restaurants struct {
	listed       prometheus.Gauge
	submissions  prometheus.Counter
	rejected     *prometheus.CounterVec
	fieldChanges *prometheus.CounterVec
	sessions     prometheus.Gauge
}

// NewRestaurants creates the domain collectors and registers them with reg.
func NewRestaurants(reg prometheus.Registerer) (*Restaurants, error) {
	m := &Restaurants{
		listed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "restaurants_listed",
			Help: "Number of restaurants currently in the list.",
		}),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restaurant_submissions_total",
			Help: "Total number of accepted restaurant submissions.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_submissions_rejected_total",
			Help: "Submissions rejected by input constraints, by offending field.",
		}, []string{"field"}),
		fieldChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "draft_field_changes_total",
			Help: "Total number of draft field change events.",
		}, []string{"field"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "draft_sessions_open",
			Help: "Number of open draft sessions.",
		}),
	}

	for _, c := range []prometheus.Collector{m.listed, m.submissions, m.rejected, m.fieldChanges, m.sessions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveList records the size of the list. It is meant to be subscribed to the restaurant service.
func (m *Restaurants) ObserveList(l model.RestaurantList) {
	if m == nil {
		return
	}
	m.listed.Set(float64(len(l)))
	m.submissions.Inc()
}

// FieldChanged counts one change event for field.
func (m *Restaurants) FieldChanged(field model.Field) {
	if m == nil {
		return
	}
	m.fieldChanges.WithLabelValues(string(field)).Inc()
}

// Rejected counts a submission refused by the constraint check, once per offending field.
func (m *Restaurants) Rejected(fields []model.Field) {
	if m == nil {
		return
	}
	for _, f := range fields {
		m.rejected.WithLabelValues(string(f)).Inc()
	}
}

// SessionsOpen records the number of open draft sessions.
func (m *Restaurants) SessionsOpen(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}
