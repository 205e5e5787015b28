package tracing

import (
	"fmt"
	"net/http"
	"strings"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/mailfleet/mailfleet/config"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// traceExporters maps the TRACING_TRACE_EXPORTER values to their setup
// functions. Each registers one exporter with the OpenCensus trace package.
var traceExporters = map[string]func(*config.TracingConfig) error{
	"jaeger":      setupJaeger,
	"zipkin":      setupZipkin,
	"stackdriver": setupStackdriverTraces,
	"datadog":     setupDatadogTraces,
	"xray":        setupXRay,
}

// metricsExporters maps the TRACING_METRICS_EXPORTER values (comma-separated
// list supported) to their setup functions.
var metricsExporters = map[string]func(*config.TracingConfig) error{
	"prometheus":  setupPrometheus,
	"stackdriver": setupStackdriverMetrics,
	"datadog":     setupDatadogMetrics,
}

// InitTracing configures the OpenCensus sampler and registers the configured
// trace and metrics exporters. With tracing disabled it is a no-op.
func InitTracing(cfg *config.TracingConfig, log logger.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if name := cfg.TraceExporter; name != "" && name != "none" {
		setup, ok := traceExporters[name]
		if !ok {
			return fmt.Errorf("unknown trace exporter %q", name)
		}
		if err := setup(cfg); err != nil {
			return fmt.Errorf("failed to set up %s trace exporter: %w", name, err)
		}
		log.WithField("exporter", name).Info("Trace exporter registered")
	}

	if err := initMetrics(cfg, log); err != nil {
		return err
	}

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	return nil
}

func initMetrics(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.MetricsExporter == "" || cfg.MetricsExporter == "none" {
		return nil
	}

	registered := 0
	for _, name := range strings.Split(cfg.MetricsExporter, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		setup, ok := metricsExporters[name]
		if !ok {
			return fmt.Errorf("unknown metrics exporter %q", name)
		}
		if err := setup(cfg); err != nil {
			return fmt.Errorf("failed to set up %s metrics exporter: %w", name, err)
		}
		log.WithField("exporter", name).Info("Metrics exporter registered")
		registered++
	}

	if registered > 0 {
		// Database metrics come through the ocsql driver wrapper.
		if err := view.Register(ocsql.DefaultViews...); err != nil {
			return fmt.Errorf("failed to register database views: %w", err)
		}
	}
	return nil
}

func setupJaeger(cfg *config.TracingConfig) error {
	if cfg.JaegerEndpoint == "" {
		return fmt.Errorf("jaeger endpoint is not configured")
	}
	exporter, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: cfg.JaegerEndpoint,
		ServiceName:       cfg.ServiceName,
		Process:           jaeger.Process{ServiceName: cfg.ServiceName},
	})
	if err != nil {
		return err
	}
	trace.RegisterExporter(exporter)
	return nil
}

func setupZipkin(cfg *config.TracingConfig) error {
	if cfg.ZipkinEndpoint == "" {
		return fmt.Errorf("zipkin endpoint is not configured")
	}
	reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
	trace.RegisterExporter(zipkin.NewExporter(reporter, nil))
	return nil
}

func setupStackdriverTraces(cfg *config.TracingConfig) error {
	if cfg.StackdriverProjectID == "" {
		return fmt.Errorf("stackdriver project id is not configured")
	}
	exporter, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID: cfg.StackdriverProjectID,
	})
	if err != nil {
		return err
	}
	trace.RegisterExporter(exporter)
	return nil
}

func setupStackdriverMetrics(cfg *config.TracingConfig) error {
	if cfg.StackdriverProjectID == "" {
		return fmt.Errorf("stackdriver project id is not configured")
	}
	exporter, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
	})
	if err != nil {
		return err
	}
	view.RegisterExporter(exporter)
	return nil
}

// datadogAgentAddr resolves the agent address, falling back to the shared
// agent endpoint when no Datadog-specific one is set.
func datadogAgentAddr(cfg *config.TracingConfig) string {
	if cfg.DatadogAgentAddress != "" {
		return cfg.DatadogAgentAddress
	}
	return cfg.AgentEndpoint
}

func setupDatadogTraces(cfg *config.TracingConfig) error {
	addr := datadogAgentAddr(cfg)
	if addr == "" {
		return fmt.Errorf("datadog agent address is not configured")
	}
	exporter, err := datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: addr,
		StatsAddr: addr,
	})
	if err != nil {
		return err
	}
	trace.RegisterExporter(exporter)
	return nil
}

func setupDatadogMetrics(cfg *config.TracingConfig) error {
	addr := datadogAgentAddr(cfg)
	if addr == "" {
		return fmt.Errorf("datadog agent address is not configured")
	}
	options := datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: addr,
		StatsAddr: addr,
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{"api_key": cfg.DatadogAPIKey}
	}
	exporter, err := datadog.NewExporter(options)
	if err != nil {
		return err
	}
	view.RegisterExporter(exporter)
	return nil
}

func setupXRay(cfg *config.TracingConfig) error {
	if cfg.XRayRegion == "" {
		return fmt.Errorf("x-ray region is not configured")
	}
	exporter, err := aws.NewExporter(
		aws.WithRegion(cfg.XRayRegion),
		aws.WithVersion("latest"),
	)
	if err != nil {
		return err
	}
	trace.RegisterExporter(exporter)
	return nil
}

func setupPrometheus(cfg *config.TracingConfig) error {
	exporter, err := prometheus.NewExporter(prometheus.Options{
		Namespace: cfg.ServiceName,
	})
	if err != nil {
		return err
	}
	view.RegisterExporter(exporter)

	if cfg.PrometheusPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", exporter)
		go func() {
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.PrometheusPort),
				Handler: mux,
			}
			_ = server.ListenAndServe()
		}()
	}
	return nil
}
