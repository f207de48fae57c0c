// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package telemetry

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type noopExporter struct{}

func (noopExporter) ExportSpans(context.Context, []sdktrace.ReadOnlySpan) error { return nil }
func (noopExporter) Shutdown(context.Context) error                             { return nil }

func TestInitDisabledWithoutEndpoint(t *testing.T) {
	restore := setExporterFactoryForTest(func(context.Context, string) (sdktrace.SpanExporter, error) {
		t.Fatal("exporter must not be created when telemetry is disabled")
		return nil, nil
	})
	defer restore()

	shutdown, err := Init(context.Background(), "  ")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	shutdown()
}

func TestInitUsesConfiguredEndpoint(t *testing.T) {
	var gotEndpoint string
	restore := setExporterFactoryForTest(func(_ context.Context, endpoint string) (sdktrace.SpanExporter, error) {
		gotEndpoint = endpoint
		return noopExporter{}, nil
	})
	defer restore()

	shutdown, err := Init(context.Background(), "http://collector:4318")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer shutdown()

	if gotEndpoint != "http://collector:4318" {
		t.Fatalf("endpoint = %q", gotEndpoint)
	}
}
