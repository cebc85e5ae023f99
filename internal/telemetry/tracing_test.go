package telemetry

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestEnabled(t *testing.T) {
	t.Run("disabled without endpoint", func(t *testing.T) {
		t.Setenv("OTEL_SDK_DISABLED", "")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
		t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
		assert.False(t, Enabled())
	})

	t.Run("enabled with endpoint", func(t *testing.T) {
		t.Setenv("OTEL_SDK_DISABLED", "")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
		assert.True(t, Enabled())
	})

	t.Run("sdk disabled wins over endpoint", func(t *testing.T) {
		t.Setenv("OTEL_SDK_DISABLED", "true")
		t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://collector:4318")
		assert.False(t, Enabled())
	})
}

func TestInitTracingDisabledIsNoop(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	shutdown, err := InitTracing(context.Background(), "test", quietLogger())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracingUnsupportedProtocolDegrades(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")

	shutdown, err := InitTracing(context.Background(), "test", quietLogger())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	testCases := []struct {
		name, arg, description string
	}{
		{name: "always_on", description: "AlwaysOnSampler"},
		{name: "always_off", description: "AlwaysOffSampler"},
		{name: "traceidratio", arg: "0.5", description: "TraceIDRatioBased{0.5}"},
		{name: "", description: "ParentBased{root:AlwaysOnSampler"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, Sampler(tc.name, tc.arg).Description(), tc.description)
		})
	}
}
