// Package reqif declares the ReqIF import surface.
//
// ReqIF (Requirements Interchange Format) carries requirement types and
// objects that map onto Property and Entity classes and their instances.
// The attribute-name mapping is already maintained in the vocabulary
// package (ToReqIF / FromReqIF); the XML ingestion itself is not built yet,
// so Import reports a not-implemented status rather than failing silently.
package reqif

import (
	"io"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/pig"
)

// Importer reads ReqIF documents and yields the contained items.
type Importer struct {
	model *pig.Model
}

// NewImporter creates an importer building items through the given model.
func NewImporter(model *pig.Model) *Importer {
	return &Importer{model: model}
}

// Import parses a ReqIF document into items.
//
// TODO: parse SPEC-OBJECT-TYPE and SPEC-OBJECT elements and map their
// attributes through vocabulary.FromReqIF.
func (i *Importer) Import(_ io.Reader) ([]pig.Item, message.Status) {
	return nil, message.CreateStatus(message.StatusNotImplemented,
		i.model.Language(), "ReqIF import")
}
