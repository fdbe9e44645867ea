package pig

import (
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/errors"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/jsonld"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/metric"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/schema"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

// Model is the factory and shared context for items: it carries the status
// catalog language, the schema validator, logger, metrics and the JSON-LD
// transform settings. A Model is immutable after construction and safe for
// concurrent use; the items it creates are not.
type Model struct {
	lang      language.Tag
	validator schema.Validator
	log       *slog.Logger
	metrics   *metric.Metrics
	context   string
	idKeys    []string
	collector *jsonld.Collector
}

// Option configures a Model.
type Option func(*Model)

// WithLanguage selects the status catalog language. Default is English.
func WithLanguage(tag language.Tag) Option {
	return func(m *Model) { m.lang = tag }
}

// WithValidator replaces the embedded schema validator.
func WithValidator(v schema.Validator) Option {
	return func(m *Model) { m.validator = v }
}

// WithLogger sets the logger for warnings (rename collisions, unknown
// datatypes). Default is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithMetrics enables validation and transform counters.
func WithMetrics(metrics *metric.Metrics) Option {
	return func(m *Model) { m.metrics = metrics }
}

// WithContext sets the context URI emitted under "@context" by GetJSONLD.
func WithContext(uri string) Option {
	return func(m *Model) { m.context = uri }
}

// WithIDKeys overrides the keys treated as id keys by the JSON-LD
// transforms. Default is "id" and "@id".
func WithIDKeys(keys ...string) Option {
	return func(m *Model) { m.idKeys = keys }
}

// The embedded schemas compile once, on first use, shared by all models
// that do not bring their own validator.
var defaultValidator = sync.OnceValue(func() schema.Validator {
	return schema.MustValidator()
})

// NewModel creates a model with the given options.
func NewModel(opts ...Option) *Model {
	m := &Model{
		lang: language.English,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.validator == nil {
		m.validator = defaultValidator()
	}
	m.collector = jsonld.NewCollector()
	return m
}

// Language returns the status catalog language.
func (m *Model) Language() language.Tag { return m.lang }

// NewItem creates an empty item for a type tag. An unknown tag is a
// programming error and panics.
func (m *Model) NewItem(t ItemType) Item {
	switch t {
	case TypeProperty:
		return m.NewProperty()
	case TypeReference:
		return m.NewReference()
	case TypeEntity:
		return m.NewEntity()
	case TypeRelationship:
		return m.NewRelationship()
	case TypeAProperty:
		return m.NewAProperty()
	case TypeAReference:
		return m.NewAReference()
	case TypeAnEntity:
		return m.NewAnEntity()
	case TypeARelationship:
		return m.NewARelationship()
	default:
		panic(errors.WrapProgramming(errors.ErrUnknownItem, "pig", "NewItem", string(t)))
	}
}

func (m *Model) NewProperty() *Property {
	return &Property{core: core{model: m, itemType: TypeProperty}}
}

func (m *Model) NewReference() *Reference {
	return &Reference{core: core{model: m, itemType: TypeReference}}
}

func (m *Model) NewEntity() *Entity {
	return &Entity{core: core{model: m, itemType: TypeEntity}}
}

func (m *Model) NewRelationship() *Relationship {
	return &Relationship{core: core{model: m, itemType: TypeRelationship}}
}

func (m *Model) NewAProperty() *AProperty {
	return &AProperty{core: core{model: m, itemType: TypeAProperty}}
}

func (m *Model) NewAReference() *AReference {
	return &AReference{core: core{model: m, itemType: TypeAReference}}
}

func (m *Model) NewAnEntity() *AnEntity {
	return &AnEntity{core: core{model: m, itemType: TypeAnEntity}}
}

func (m *Model) NewARelationship() *ARelationship {
	return &ARelationship{core: core{model: m, itemType: TypeARelationship}}
}

func (m *Model) status(code int, args ...any) message.Status {
	return message.CreateStatus(code, m.lang, args...)
}

// checkSchema runs the external validator. Engine failures surface as a
// status so that callers stay in the data-error channel; an unknown item
// type is a programming error and panics.
func (m *Model) checkSchema(t ItemType, data map[string]any) message.Status {
	res, err := m.validator.Validate(string(t), data)
	if err != nil {
		if errors.IsProgramming(err) {
			panic(err)
		}
		return m.status(message.StatusSchemaEngineError, err)
	}
	if !res.Valid {
		return m.status(message.StatusSchemaViolation, string(t), res.Details)
	}
	return message.OK()
}

// observe feeds the validation outcome into the metrics, when enabled.
func (m *Model) observe(t ItemType, st message.Status) {
	if m.metrics == nil {
		return
	}
	if st.Ok {
		m.metrics.ItemsValidated.WithLabelValues(string(t), "valid").Inc()
		return
	}
	m.metrics.ItemsValidated.WithLabelValues(string(t), "rejected").Inc()
	m.metrics.ValidationFailures.WithLabelValues(string(t), metric.BandFor(st.Status)).Inc()
}

func (m *Model) observeTransform(direction string) {
	if m.metrics == nil {
		return
	}
	m.metrics.Transforms.WithLabelValues(direction).Inc()
}

func (m *Model) renameOptions() vocabulary.RenameOptions {
	opts := vocabulary.RenameOptions{Logger: m.log}
	if m.metrics != nil {
		opts.OnCollision = func(string, string) { m.metrics.RenameCollisions.Inc() }
	}
	return opts
}

// internalize converts a JSON-LD document to internal key form: tag
// renaming, then id-object unpacking. The input document is left untouched;
// a document-level @context is dropped because it belongs to the document,
// not the item.
func (m *Model) internalize(doc map[string]any) map[string]any {
	tree := vocabulary.RenameTags(doc, vocabulary.FromJSONLD(), m.renameOptions())
	tree = jsonld.ReplaceIDObjects(tree, jsonld.Options{Mutate: true, IDKeys: m.idKeys})
	obj, _ := tree.(map[string]any)
	if obj == nil {
		obj = map[string]any{}
	}
	delete(obj, "context")
	m.observeTransform("from_jsonld")
	return obj
}

// externalize converts an internal snapshot to JSON-LD key form. expand, if
// given, runs between tag renaming and id-object packing so that the owned
// collections it adds get their id strings packed too.
func (m *Model) externalize(snap map[string]any, expand func(out map[string]any)) map[string]any {
	tree := vocabulary.RenameTags(snap, vocabulary.ToJSONLD(), m.renameOptions())
	out, _ := tree.(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	if expand != nil {
		expand(out)
	}
	out, _ = jsonld.MakeIDObjects(out, jsonld.Options{Mutate: true, IDKeys: m.idKeys}).(map[string]any)
	if m.context != "" {
		out[jsonld.KeywordContext] = m.context
	}
	m.observeTransform("to_jsonld")
	return out
}
