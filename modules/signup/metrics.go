package signup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts submissions and per-field failures.
//
// Labels:
//   - outcome: "success" or "failure"
//   - field, kind: the failing field and its Kind
//
// Every label combination starts at zero so rate() has a series from
// process start.
type Metrics struct {
	submissions   *prometheus.CounterVec
	fieldFailures *prometheus.CounterVec
}

// NewMetrics registers the counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pagekit_signup_submissions_total",
			Help: "Signup form submissions by outcome.",
		}, []string{"outcome"}),
		fieldFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pagekit_signup_field_failures_total",
			Help: "Signup field validation failures by field and kind.",
		}, []string{"field", "kind"}),
	}

	m.submissions.WithLabelValues("success").Add(0)
	m.submissions.WithLabelValues("failure").Add(0)
	for field, kinds := range fieldKinds {
		for _, kind := range kinds {
			m.fieldFailures.WithLabelValues(string(field), string(kind)).Add(0)
		}
	}
	return m
}

var fieldKinds = map[Field][]Kind{
	FieldName:     {KindEmpty, KindInvalidChars},
	FieldEmail:    {KindEmpty, KindInvalidFormat},
	FieldPassword: {KindEmpty, KindTooShort, KindWeak},
	FieldConfirm:  {KindEmpty, KindMismatch},
}

func (m *Metrics) observe(state FormState) {
	if m == nil {
		return
	}
	outcome := "success"
	if !state.Valid() {
		outcome = "failure"
	}
	m.submissions.WithLabelValues(outcome).Inc()

	for _, f := range Fields() {
		if r := state.Get(f); !r.Valid {
			m.fieldFailures.WithLabelValues(string(f), string(r.Kind)).Inc()
		}
	}
}
