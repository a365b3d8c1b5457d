package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriterFollowsLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.WarnLevel)
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "server")

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "server")
}

func TestSetup(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	Setup(true)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	Setup(false)
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}
