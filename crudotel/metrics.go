// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crudotel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"code.hybscloud.com/icrud"
)

const (
	scopeName    = "code.hybscloud.com/icrud/crudotel"
	scopeVersion = "v0.1.0"
)

// Attribute keys shared by spans, metrics and log records.
const (
	OpKey      = attribute.Key("icrud.op")
	IDKey      = attribute.Key("icrud.id")
	OutcomeKey = attribute.Key("icrud.outcome")
)

type operationMetrics struct {
	operations metric.Int64Counter
	duration   metric.Float64Histogram
}

func newOperationMetrics(mp metric.MeterProvider) (*operationMetrics, error) {
	meter := mp.Meter(scopeName, metric.WithInstrumentationVersion(scopeVersion))

	m := new(operationMetrics)
	var err error

	if m.operations, err = meter.Int64Counter(
		"icrud.operations",
		metric.WithDescription("Number of operations resolved by the executor"),
	); err != nil {
		return nil, err
	}

	if m.duration, err = meter.Float64Histogram(
		"icrud.operation.duration",
		metric.WithDescription("Time spent in the executor per operation"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *operationMetrics) record(ctx context.Context, kind icrud.Kind, d time.Duration, err error) {
	attrs := metric.WithAttributes(
		OpKey.String(kind.String()),
		OutcomeKey.String(outcome(err)),
	)
	m.operations.Add(ctx, 1, attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
