package schema

import (
	"bytes"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New(nil)
	require.NotNil(t, b.Document())
	assert.Empty(t, b.Document())

	_, err := uuid.Parse(b.Revision())
	assert.NoError(t, err)
	assert.NotEqual(t, b.Revision(), New(nil).Revision())
}

func TestWithLogger(t *testing.T) {
	var levels []string
	b := New(testDocument(), WithLogger(FuncLogger{Fn: func(level, msg string, ctx map[string]any) {
		levels = append(levels, level)
	}}), WithLogger(nil))

	b.MergeDefaultFieldAttr(func(*Builder, *Model, *Field) *Field { return nil }, false)
	assert.Equal(t, []string{"info", "trace"}, levels)
}

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	StdLogger(false).Trace("hidden", nil)
	assert.Empty(t, buf.String())

	StdLogger(true).Trace("merge schema", map[string]any{"models": 2})
	assert.Contains(t, buf.String(), `schema: [trace] merge schema {"models":2}`)

	buf.Reset()
	StdLogger(false).Info("builder ready", nil)
	assert.Contains(t, buf.String(), "schema: [info] builder ready")
}

func TestHumanizeReexports(t *testing.T) {
	assert.Equal(t, "First Name", HumanizeField("firstName"))
	assert.Equal(t, "Lease Space", HumanizeModel("LeaseSpace"))
	assert.Equal(t, "Lease Spaces", HumanizeModelPlural("LeaseSpace"))
}
