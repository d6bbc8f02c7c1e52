package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)
	log.Debug("debug line")
	log.Info("info line")
	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")

	buf.Reset()
	log = New(&buf, true, false)
	log.Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")

	buf.Reset()
	log = New(&buf, false, true)
	log.Info("info line")
	log.Error("error line")
	assert.NotContains(t, buf.String(), "info line")
	assert.Contains(t, buf.String(), "error line")

	// quiet wins over verbose
	buf.Reset()
	log = New(&buf, true, true)
	log.Debug("debug line")
	assert.NotContains(t, buf.String(), "debug line")
}
