// Package metric provides prometheus collectors for model and transform
// activity: items validated and rejected, JSON-LD round trips, tag-rename
// collisions.
//
// The package exposes collectors only; serving them is the embedding
// application's concern. Register the set on any prometheus registry:
//
//	m := metric.NewMetrics()
//	if err := m.Register(prometheus.DefaultRegisterer); err != nil { ... }
//	model := pig.NewModel(pig.WithMetrics(m))
package metric
