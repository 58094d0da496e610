package signup

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := NewController(WithMetrics(m))

	// Two outcome series plus nine field/kind series, all at zero.
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	c.Submit(Values{Name: "Ada", Email: "ada@example.com", Password: "abc123", Confirm: "abc123"}, nil)
	c.Submit(Values{Name: "Ada", Email: "ada@example.com", Password: "abcdef", Confirm: ""}, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldFailures.WithLabelValues("password", "WEAK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldFailures.WithLabelValues("confirm-password", "EMPTY")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.fieldFailures.WithLabelValues("name", "EMPTY")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()
	c := NewController()
	assert.NotPanics(t, func() { c.Submit(Values{}, nil) })
}
