package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_Levels(t *testing.T) {
	defer func() { L = zap.NewNop() }()

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Output: &buf}))

	Info("hidden by default")
	Warn("device not paired in linux", zap.String("device", "C8:29:0A:11:F4:C1"))

	out := buf.String()
	assert.NotContains(t, out, "hidden by default")
	assert.Contains(t, out, "device not paired in linux")
	assert.Contains(t, out, "C8:29:0A:11:F4:C1")
}

func TestInit_DebugJSON(t *testing.T) {
	defer func() { L = zap.NewNop() }()

	var buf bytes.Buffer
	require.NoError(t, Init(Options{
		Level:  "DEBUG",
		Format: FormatJSON,
		Output: &buf,
		Fields: []zap.Field{zap.String("run", "abc")},
	}))

	Debug("decoded device")
	assert.Contains(t, buf.String(), `"msg":"decoded device"`)
	assert.Contains(t, buf.String(), `"run":"abc"`)
}

func TestInit_Invalid(t *testing.T) {
	assert.Error(t, Init(Options{Level: "loud"}))
	assert.Error(t, Init(Options{Format: "xml"}))
}
