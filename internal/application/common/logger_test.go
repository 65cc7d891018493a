package common_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jplacht/prunplanner-go/internal/application/common"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Log(level string, message string, metadata map[string]interface{}) {
	l.messages = append(l.messages, level+": "+message)
}

func TestLoggerFromContext(t *testing.T) {
	logger := &recordingLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	common.LoggerFromContext(ctx).Log("warn", "anomaly", nil)

	assert.Equal(t, []string{"warn: anomaly"}, logger.messages)
}

func TestLoggerFromContext_DefaultsToNop(t *testing.T) {
	logger := common.LoggerFromContext(context.Background())

	assert.NotPanics(t, func() {
		logger.Log("info", "dropped", map[string]interface{}{"k": 1})
	})
}
