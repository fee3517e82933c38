package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestTracerIsNoopByDefault(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "test")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid(), "без InitTelemetry спаны не записываются")
}

func TestInitTelemetry(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	shutdown, err := InitTelemetry(context.Background(), "antgrid-test")
	require.NoError(t, err)

	// Без записанных спанов остановка не обращается к коллектору
	assert.NoError(t, shutdown(context.Background()))
}
