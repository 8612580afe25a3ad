package cli

import (
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndLoggerFromContext(t *testing.T) {
	ctx := context.Background()
	logger := charmlog.Default()

	ctx = withLogger(ctx, logger)
	assert.Same(t, logger, loggerFromContext(ctx))
}

func TestLoggerFromContext_DefaultsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, loggerFromContext(ctx))
}
