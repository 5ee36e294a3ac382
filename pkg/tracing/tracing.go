// Package tracing 提供基于OpenTelemetry的分布式追踪
//
// 核心概念：
// - Trace：一次完整请求链路（所有Span共享同一TraceID）
// - Span：一个操作单元（名称、起止时间、状态）
// - Exporter：将Span上报到收集端（本项目用OTLP gRPC，对接Jaeger/Tempo）
//
// 追踪是可选能力：tracing.enabled=false时不初始化，
// HTTP中间件检测到Provider未安装则直接透传。
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Config 追踪配置
type Config struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`     // OTLP gRPC端点（如 localhost:4317）
	ServiceName string  `mapstructure:"service_name"` // 服务名（展示在追踪系统中）
	SampleRatio float64 `mapstructure:"sample_ratio"` // 采样率（0~1，生产环境建议0.1以下）
}

// Shutdown 关闭函数（flush未上报的Span）
type Shutdown func(ctx context.Context) error

// Init 初始化全局TracerProvider
// 返回Shutdown函数，程序退出前调用以flush缓冲的Span
func Init(cfg Config) (Shutdown, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建resource失败: %w", err)
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		// ParentBased：有上游采样决策时跟随，否则按比例采样
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// StartSpan 开启一个Span（业务代码侧的便捷入口）
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("livraria").Start(ctx, name)
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	return ctx, span
}
