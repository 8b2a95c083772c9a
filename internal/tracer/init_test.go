package tracer

import (
	"context"
	"testing"

	"mockup-editor-be/internal/config"
	"mockup-editor-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestDisabledTracerShutsDownCleanly(t *testing.T) {
	shutdown := InitTracer(context.Background(), config.TracingConfig{Enabled: false}, logger.NewNopLogger())
	assert.NoError(t, shutdown(context.Background()))
}
