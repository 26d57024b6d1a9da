package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/kbukum/seqkit/errors"
)

// Terminal tracks one terminal operation of a pipeline from start to end.
type Terminal struct {
	Pipeline   string
	PipelineID string
	Operation  string
	StartTime  time.Time

	metrics *metrics
	span    trace.Span
}

// StartTerminal opens a span for a terminal operation. On a nil receiver
// the returned Terminal only measures time.
func (ins *Instruments) StartTerminal(ctx context.Context, pipeline, pipelineID, operation string) (context.Context, *Terminal) {
	t := &Terminal{
		Pipeline:   pipeline,
		PipelineID: pipelineID,
		Operation:  operation,
		StartTime:  time.Now(),
		span:       noop.Span{},
	}
	if ins == nil {
		return ctx, t
	}
	t.metrics = ins.metrics
	ctx, t.span = ins.tracer.Start(ctx, SpanTerminal,
		trace.WithAttributes(
			attribute.String(AttrPipelineName, pipeline),
			attribute.String(AttrPipelineID, pipelineID),
			attribute.String(AttrOperation, operation),
		),
	)
	return ctx, t
}

// End closes the span and records the duration and, on failure, the error
// code. items is the number of source values pulled during the operation.
func (t *Terminal) End(ctx context.Context, items int64, err error) {
	duration := t.Duration()
	status := Status(err)

	code := ""
	if err != nil {
		code = string(errors.Wrap(err).Code)
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, err.Error())
		t.span.SetAttributes(attribute.String(AttrErrorCode, code))
	}
	t.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrItems, items),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	t.span.End()

	if t.metrics != nil {
		t.metrics.recordTerminal(ctx, t.Pipeline, t.Operation, code, duration)
	}
}

// Duration returns the elapsed time since the operation started.
func (t *Terminal) Duration() time.Duration {
	return time.Since(t.StartTime)
}

// Status maps an operation result to "ok" or "error".
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
