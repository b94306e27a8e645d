package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.warn)
	assert.NotNil(t, logger.error)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	// None of these should panic
	logger.Info("video %s fetched by %s", "video-1", "user-1")
	logger.Warn("watch history append failed: %s", "redis down")
	logger.Error("toggle failed for %s: %v", "user-1", assert.AnError)
}

func TestLogger_Formatting(t *testing.T) {
	logger := New()

	logger.Info("user %s subscribed to channel %s", "alice", "bob")
	logger.Error("failed to fetch video %d: %s", 404, "not found")
	logger.Warn("queue depth is %d", 5)
}
