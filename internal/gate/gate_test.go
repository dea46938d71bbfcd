package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateStartsRunning(t *testing.T) {
	g := New()
	assert.False(t, g.Paused())
}

func TestPauseAndResume(t *testing.T) {
	g := New()

	g.Pause()
	assert.True(t, g.Paused())

	// Idempotent
	g.Pause()
	assert.True(t, g.Paused())

	g.Resume()
	assert.False(t, g.Paused())

	g.Resume()
	assert.False(t, g.Paused())
}
