package tracing

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("mesotracker")

// EndSpanWithErrCheck records a non-nil err on the span and ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// EndSpanIgnoring ends the span, recording err only if it matches none of the expected errors.
// Used where "not found" style results are part of normal flow.
func EndSpanIgnoring(span trace.Span, err error, expected ...error) {
	for _, e := range expected {
		if errors.Is(err, e) {
			span.End()
			return
		}
	}
	EndSpanWithErrCheck(span, err)
}
