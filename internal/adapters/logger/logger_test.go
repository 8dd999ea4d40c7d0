package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.Info("probing interpreter")
	l.Warn("cache write failed")
	l.Error(assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "probing interpreter")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "cache write failed")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, assert.AnError.Error())
}
