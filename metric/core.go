package metric

import "github.com/prometheus/client_golang/prometheus"

// Metrics contains all model-level collectors.
type Metrics struct {
	// ItemsValidated counts validation runs by item type and outcome
	// ("valid", "rejected").
	ItemsValidated *prometheus.CounterVec

	// ValidationFailures counts rejected validations by item type and
	// status code band ("schema", "id", "array", "text", "package").
	ValidationFailures *prometheus.CounterVec

	// Transforms counts JSON-LD transforms by direction ("to_jsonld",
	// "from_jsonld").
	Transforms *prometheus.CounterVec

	// RenameCollisions counts tag renames that overwrote an existing key.
	RenameCollisions prometheus.Counter
}

// NewMetrics creates the model metrics set.
func NewMetrics() *Metrics {
	return &Metrics{
		ItemsValidated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pig",
				Subsystem: "items",
				Name:      "validated_total",
				Help:      "Total number of item validations",
			},
			[]string{"item_type", "outcome"},
		),
		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pig",
				Subsystem: "items",
				Name:      "validation_failures_total",
				Help:      "Total number of rejected validations by error band",
			},
			[]string{"item_type", "band"},
		),
		Transforms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pig",
				Subsystem: "transform",
				Name:      "runs_total",
				Help:      "Total number of JSON-LD transforms",
			},
			[]string{"direction"},
		),
		RenameCollisions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pig",
				Subsystem: "transform",
				Name:      "rename_collisions_total",
				Help:      "Total number of tag renames that overwrote an existing key",
			},
		),
	}
}

// Register registers all collectors on a registry.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.ItemsValidated,
		m.ValidationFailures,
		m.Transforms,
		m.RenameCollisions,
	} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// BandFor maps a status code to its metric band label.
func BandFor(code int) string {
	switch {
	case code >= 900 && code < 910:
		return "schema"
	case code >= 910 && code < 920:
		return "id"
	case code >= 920 && code < 930:
		return "array"
	case code >= 930 && code < 940:
		return "text"
	case code >= 940 && code < 950:
		return "package"
	default:
		return "other"
	}
}
