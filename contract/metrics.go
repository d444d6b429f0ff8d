// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"fmt"

	"github.com/luxfi/metric"
)

// Metrics counts precompile activity per scheme. Counters self-register on
// creation, so each scheme package builds its Metrics once in a package var.
// All methods are nil-safe so tests can construct precompiles without them.
type Metrics struct {
	runs         metric.Counter
	formatErrors metric.Counter
}

// NewMetrics returns counters namespaced by scheme, e.g.
// precompile_mldsa_runs.
func NewMetrics(scheme string) *Metrics {
	return &Metrics{
		runs: metric.NewCounter(metric.CounterOpts{
			Name: fmt.Sprintf("precompile_%s_runs", scheme),
			Help: fmt.Sprintf("Number of %s precompile invocations that passed the gas check", scheme),
		}),
		formatErrors: metric.NewCounter(metric.CounterOpts{
			Name: fmt.Sprintf("precompile_%s_format_errors", scheme),
			Help: fmt.Sprintf("Number of %s precompile invocations rejected with a format error", scheme),
		}),
	}
}

func (m *Metrics) IncRun() {
	if m != nil {
		m.runs.Inc()
	}
}

func (m *Metrics) IncFormatError() {
	if m != nil {
		m.formatErrors.Inc()
	}
}
