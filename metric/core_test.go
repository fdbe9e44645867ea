package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndCount(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.ItemsValidated.WithLabelValues("pig:Entity", "valid").Inc()
	m.ValidationFailures.WithLabelValues("pig:Entity", "id").Add(2)
	m.Transforms.WithLabelValues("to_jsonld").Inc()
	m.RenameCollisions.Inc()

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.ItemsValidated.WithLabelValues("pig:Entity", "valid")))
	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.ValidationFailures.WithLabelValues("pig:Entity", "id")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RenameCollisions))
}

func TestRegisterTwiceFails(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, "schema", BandFor(901))
	assert.Equal(t, "id", BandFor(912))
	assert.Equal(t, "array", BandFor(922))
	assert.Equal(t, "text", BandFor(931))
	assert.Equal(t, "package", BandFor(941))
	assert.Equal(t, "other", BandFor(200))
}
