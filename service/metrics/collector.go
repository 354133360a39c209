// Copyright 2023 Chaldal
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Downloads counts source artifact downloads that actually hit the
	// network, as opposed to being skipped because the file was present.
	Downloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osm_downloads_total",
		Help: "Number of source artifacts downloaded.",
	})

	// BatchesWritten counts batch files published, per element kind.
	BatchesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "osm_batches_written_total",
		Help: "Number of batch files written, by element kind.",
	}, []string{"kind"})

	// Preparations counts finished preparation runs by result.
	Preparations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "osm_preparations_total",
		Help: "Number of finished preparation pipelines, by result.",
	}, []string{"result"})

	// PreparationsInflight tracks currently running preparation pipelines.
	PreparationsInflight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "osm_preparations_inflight",
		Help: "Number of preparation pipelines currently running.",
	})
)
