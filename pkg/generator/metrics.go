// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Generation metrics
	recordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagen_records_generated_total",
			Help: "Total number of recipe records generated, by strip suffix",
		},
		[]string{"suffix"},
	)
	generationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagen_generation_errors_total",
			Help: "Total number of failed generations, by error code",
		},
		[]string{"code"},
	)
	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "datagen_generate_duration_seconds",
			Help:    "Duration of record generation in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
		},
	)

	// Emission metrics
	filesEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "datagen_files_emitted_total",
			Help: "Total number of record documents written",
		},
	)
	bytesEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "datagen_bytes_emitted_total",
			Help: "Total number of bytes written for record documents",
		},
	)
	emitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "datagen_emit_duration_seconds",
			Help:    "Duration of the emission pass in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)
)

// WriteMetrics writes every registered metric to path in the Prometheus
// text format, for collection by a node exporter textfile collector.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
