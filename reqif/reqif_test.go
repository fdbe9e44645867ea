package reqif

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/pig"
)

func TestImportReportsNotImplemented(t *testing.T) {
	importer := NewImporter(pig.NewModel(pig.WithLanguage(language.German)))

	items, st := importer.Import(strings.NewReader("<REQ-IF/>"))
	require.False(t, st.Ok)
	assert.Equal(t, message.StatusNotImplemented, st.Status)
	assert.Contains(t, st.StatusText, "ReqIF import")
	assert.Nil(t, items)
}
