package schema

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/errors"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// schemaFiles maps item type tags to their embedded schema documents.
var schemaFiles = map[string]string{
	"pig:Property":      "schemas/property.json",
	"pig:Reference":     "schemas/reference.json",
	"pig:Entity":        "schemas/entity.json",
	"pig:Relationship":  "schemas/relationship.json",
	"pig:aProperty":     "schemas/aproperty.json",
	"pig:aReference":    "schemas/areference.json",
	"pig:anEntity":      "schemas/anentity.json",
	"pig:aRelationship": "schemas/arelationship.json",
}

// Result is the outcome of a schema validation run.
type Result struct {
	// Valid reports whether the candidate conforms to its class schema.
	Valid bool
	// Details holds the validator's error descriptions when Valid is false.
	Details string
}

// Validator is the narrow contract the model layer validates through.
// A returned error means the validation engine itself failed, which is
// distinct from the candidate being invalid.
type Validator interface {
	Validate(itemType string, candidate map[string]any) (Result, error)
}

// JSONSchemaValidator validates candidates against the embedded per-class
// JSON Schemas. It is immutable after construction and safe for concurrent
// use.
type JSONSchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the embedded schemas. Compilation failure indicates
// a broken build, not bad user data, and is returned as an external error.
func NewValidator() (*JSONSchemaValidator, error) {
	common, err := schemaFS.ReadFile("schemas/common.json")
	if err != nil {
		return nil, errors.WrapExternal(err, "schema", "NewValidator", "read common schema")
	}

	compiled := make(map[string]*gojsonschema.Schema, len(schemaFiles))
	for itemType, file := range schemaFiles {
		data, err := schemaFS.ReadFile(file)
		if err != nil {
			return nil, errors.WrapExternal(err, "schema", "NewValidator", "read "+file)
		}
		// gojsonschema allows only one root document per SchemaLoader
		// (documents loaded from bytes all pool under the empty reference),
		// so each class schema gets its own loader with common registered.
		loader := gojsonschema.NewSchemaLoader()
		if err := loader.AddSchemas(gojsonschema.NewBytesLoader(common)); err != nil {
			return nil, errors.WrapExternal(err, "schema", "NewValidator", "register common schema")
		}
		s, err := loader.Compile(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, errors.WrapExternal(err, "schema", "NewValidator", "compile "+file)
		}
		compiled[itemType] = s
	}
	return &JSONSchemaValidator{schemas: compiled}, nil
}

// MustValidator is NewValidator for package initialization; it panics on
// compilation failure.
func MustValidator() *JSONSchemaValidator {
	v, err := NewValidator()
	if err != nil {
		panic("schema: " + err.Error())
	}
	return v
}

// Validate checks a candidate against the schema of its item type. The
// engine is shielded: a panic inside the validator library is converted to
// an external error rather than taking the process down.
func (v *JSONSchemaValidator) Validate(itemType string, candidate map[string]any) (result Result, err error) {
	s, ok := v.schemas[itemType]
	if !ok {
		return Result{}, errors.WrapProgramming(errors.ErrUnknownItem, "schema", "Validate", itemType)
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.WrapExternal(
				fmt.Errorf("%w: %v", errors.ErrSchemaEngine, r),
				"schema", "Validate", itemType)
		}
	}()

	res, err := s.Validate(gojsonschema.NewGoLoader(candidate))
	if err != nil {
		return Result{}, errors.WrapExternal(
			fmt.Errorf("%w: %v", errors.ErrSchemaEngine, err),
			"schema", "Validate", itemType)
	}
	if res.Valid() {
		return Result{Valid: true}, nil
	}

	details := make([]string, 0, len(res.Errors()))
	for _, desc := range res.Errors() {
		details = append(details, desc.String())
	}
	return Result{Valid: false, Details: strings.Join(details, "; ")}, nil
}
