package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// InitZipkinTracer 注册全局的 tracer provider，数据库的 span 也依赖它
func InitZipkinTracer() *trace.TracerProvider {
	type Config struct {
		Zipkin struct {
			ServiceName    string `yaml:"serviceName"`
			ServiceVersion string `yaml:"serviceVersion"`
			Endpoint       string `yaml:"endpoint"`
		} `yaml:"zipkin"`
		// 采样比例，不配置的时候全部采样
		SampleRatio float64 `yaml:"sampleRatio"`
	}
	var cfg Config
	err := econf.UnmarshalKey("trace", &cfg)
	if err != nil {
		elog.Panic("init trace config failed", elog.FieldErr(err))
	}
	if cfg.Zipkin.ServiceVersion == "" {
		cfg.Zipkin.ServiceVersion = "v0.0.1"
	}
	if cfg.SampleRatio <= 0 || cfg.SampleRatio > 1 {
		cfg.SampleRatio = 1
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.Zipkin.ServiceName),
			semconv.ServiceVersion(cfg.Zipkin.ServiceVersion),
		),
	)
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}

	exporter, err := zipkin.New(cfg.Zipkin.Endpoint)
	if err != nil {
		elog.Panic("init zipkin exporter failed", elog.FieldErr(err))
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	otel.SetTracerProvider(tp)
	return tp
}
