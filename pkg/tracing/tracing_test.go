package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/config"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

func TestInitTracing_Disabled(t *testing.T) {
	cfg := &config.TracingConfig{Enabled: false, TraceExporter: "jaeger"}
	err := InitTracing(cfg, logger.NewLoggerWithLevel("disabled"))
	assert.NoError(t, err)
}

func TestInitTracing_UnknownTraceExporter(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:             true,
		SamplingProbability: 0.1,
		TraceExporter:       "honeycomb",
	}
	err := InitTracing(cfg, logger.NewLoggerWithLevel("disabled"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown trace exporter")
}

func TestInitTracing_UnknownMetricsExporter(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:             true,
		SamplingProbability: 0.1,
		TraceExporter:       "none",
		MetricsExporter:     "prometheus, statsd",
	}
	err := InitTracing(cfg, logger.NewLoggerWithLevel("disabled"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metrics exporter")
}

func TestInitTracing_ExporterRequiresEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
	}{
		{"jaeger without endpoint", "jaeger"},
		{"zipkin without endpoint", "zipkin"},
		{"stackdriver without project", "stackdriver"},
		{"datadog without agent", "datadog"},
		{"xray without region", "xray"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.TracingConfig{
				Enabled:             true,
				SamplingProbability: 0.1,
				TraceExporter:       tt.exporter,
			}
			err := InitTracing(cfg, logger.NewLoggerWithLevel("disabled"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.exporter)
		})
	}
}

func TestDatadogAgentAddr_FallsBackToSharedEndpoint(t *testing.T) {
	cfg := &config.TracingConfig{AgentEndpoint: "agent:8126"}
	assert.Equal(t, "agent:8126", datadogAgentAddr(cfg))

	cfg.DatadogAgentAddress = "dd-agent:8126"
	assert.Equal(t, "dd-agent:8126", datadogAgentAddr(cfg))
}
