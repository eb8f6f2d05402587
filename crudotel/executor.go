// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package crudotel instruments an [icrud.Executor] with OpenTelemetry
// tracing and metrics and with structured logging.
//
// Every effect the drivers request becomes one span named after the
// operation (icrud.GetByID, icrud.GetAll, icrud.Update, icrud.Create), one
// increment of the icrud.operations counter, one icrud.operation.duration
// sample and one log record. Errors are recorded and returned unchanged.
package crudotel

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"code.hybscloud.com/icrud"
)

// Instrument wraps x so that every effect is traced, counted and logged.
func Instrument[I, D any](x icrud.Executor[I, D], opts ...Option) (icrud.Executor[I, D], error) {
	cfg := newConfig(opts)
	m, err := newOperationMetrics(cfg.meterProvider)
	if err != nil {
		return nil, err
	}
	return &executor[I, D]{
		next:     x,
		tracer:   cfg.tracerProvider.Tracer(scopeName, trace.WithInstrumentationVersion(scopeVersion)),
		metrics:  m,
		logger:   cfg.logger.With("component", "icrud"),
		formatID: cfg.formatID,
	}, nil
}

type executor[I, D any] struct {
	next     icrud.Executor[I, D]
	tracer   trace.Tracer
	metrics  *operationMetrics
	logger   *slog.Logger
	formatID func(any) string
}

func (e *executor[I, D]) GetByID(ctx context.Context, id I) (D, error) {
	ctx, end := e.start(ctx, icrud.KindGetByID, IDKey.String(e.formatID(id)))
	doc, err := e.next.GetByID(ctx, id)
	end(err)
	return doc, err
}

func (e *executor[I, D]) GetAll(ctx context.Context) ([]D, error) {
	ctx, end := e.start(ctx, icrud.KindGetAll)
	docs, err := e.next.GetAll(ctx)
	if err != nil {
		end(err)
		return docs, err
	}
	end(nil, attribute.Int("icrud.count", len(docs)))
	return docs, nil
}

func (e *executor[I, D]) Update(ctx context.Context, id I, doc D) error {
	ctx, end := e.start(ctx, icrud.KindUpdate, IDKey.String(e.formatID(id)))
	err := e.next.Update(ctx, id, doc)
	end(err)
	return err
}

func (e *executor[I, D]) Create(ctx context.Context, doc D) (I, error) {
	ctx, end := e.start(ctx, icrud.KindCreate)
	id, err := e.next.Create(ctx, doc)
	if err != nil {
		end(err)
		return id, err
	}
	end(nil, IDKey.String(e.formatID(id)))
	return id, nil
}

// start opens the span for one effect. The returned function ends it and
// records the metrics and the log record; attributes passed to it are
// known only once the effect has completed and go on both.
func (e *executor[I, D]) start(ctx context.Context, kind icrud.Kind, attrs ...attribute.KeyValue) (context.Context, func(error, ...attribute.KeyValue)) {
	attrs = append(attrs, OpKey.String(kind.String()))
	ctx, span := e.tracer.Start(ctx, "icrud."+kind.String(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	began := time.Now()

	return ctx, func(err error, result ...attribute.KeyValue) {
		elapsed := time.Since(began)
		span.SetAttributes(result...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, kind.String()+" failed")
		}
		span.End()

		e.metrics.record(ctx, kind, elapsed, err)

		args := make([]any, 0, 2*(len(attrs)+len(result))+4)
		for _, kv := range append(attrs, result...) {
			args = append(args, string(kv.Key), kv.Value.Emit())
		}
		args = append(args, "duration", elapsed)
		if err != nil {
			e.logger.WarnContext(ctx, "icrud operation failed", append(args, "error", err)...)
			return
		}
		e.logger.DebugContext(ctx, "icrud operation", args...)
	}
}
