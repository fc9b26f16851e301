/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts driver resolutions and exports served through a Manager.
type Metrics struct {
	// Resolutions counts driver instances created, by driver id and
	// source ("builtin" or "custom").
	Resolutions *prometheus.CounterVec

	// Exports counts forwarded export calls, by format, kind
	// ("item" or "collection") and outcome ("success" or "error").
	Exports *prometheus.CounterVec
}

// NewMetrics creates the manager counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exporter",
			Name:      "driver_resolutions_total",
			Help:      "Number of exporter driver instances created.",
		}, []string{"driver", "source"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exporter",
			Name:      "exports_total",
			Help:      "Number of exports served through the manager.",
		}, []string{"format", "kind", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.Resolutions, m.Exports)
	}
	return m
}

func (m *Metrics) resolved(driverID, source string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(driverID, source).Inc()
}

func (m *Metrics) exported(format, kind string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.Exports.WithLabelValues(format, kind, outcome).Inc()
}
