package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamReporter_ReportWithoutWhere(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf)

	r.Report(3, "", "Unexpected character.")

	assert.Equal(t, "[line 3] Error  : Unexpected character.\n", buf.String())
	assert.True(t, r.HadSyntaxError())
	assert.False(t, r.HadRuntimeError())
}

func TestStreamReporter_ReportWithWhere(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf)

	r.Report(5, "at end", "Expect expression.")

	assert.Equal(t, "[line 5] Error  at end : Expect expression.\n", buf.String())
}

func TestStreamReporter_RuntimeError(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf)

	r.RuntimeError(7, "Operand must be a number.")

	assert.Equal(t, "Operand must be a number.\n[line 7]\n", buf.String())
	assert.True(t, r.HadRuntimeError())
	assert.False(t, r.HadSyntaxError())
}

func TestStreamReporter_ReportAndRuntimeErrorFlagsAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf)

	r.Report(1, "", "some syntax issue")
	assert.True(t, r.HadSyntaxError())
	assert.False(t, r.HadRuntimeError())

	r.RuntimeError(2, "some runtime issue")
	assert.True(t, r.HadSyntaxError())
	assert.True(t, r.HadRuntimeError())
}

func TestStreamReporter_ResetClearsBothFlags(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf)

	r.Report(1, "", "x")
	r.RuntimeError(2, "y")
	r.Reset()

	assert.False(t, r.HadSyntaxError())
	assert.False(t, r.HadRuntimeError())
}
