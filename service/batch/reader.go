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

package batch

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
)

// Reader answers availability queries against the batch files on disk.
type Reader struct {
	log    zerolog.Logger
	layout osm.Layout
}

// NewReader creates a reader rooted at the given layout.
func NewReader(log zerolog.Logger, layout osm.Layout) *Reader {
	r := Reader{
		log:    log.With().Str("component", "batch_reader").Logger(),
		layout: layout,
	}

	return &r
}

// Batch classifies the state of one numbered batch file. The batch file is
// probed first and a successful read short-circuits; only then is the
// completion marker consulted. A file that disappears or becomes unreadable
// between the two probes of its path surfaces as a read error.
func (r *Reader) Batch(imp osm.Import, kind osm.ElementKind, number uint32) osm.BatchAvailability {

	batchFile := r.layout.BatchFile(imp, kind, number)

	_, err := os.Stat(batchFile)
	if err == nil {
		content, err := os.ReadFile(batchFile)
		if err != nil {
			r.log.Error().Err(err).Str("batch_file", batchFile).
				Msg("batch file exists but failed to read")
			return osm.BatchAvailability{
				Status:  osm.StatusReadErr,
				Message: "Failed to read batch file",
			}
		}
		return osm.BatchAvailability{
			Status:  osm.StatusReadOK,
			Content: string(content),
		}
	}

	_, err = os.Stat(r.layout.CompleteFile(imp, kind))
	if err == nil {
		return osm.BatchAvailability{Status: osm.StatusNeverWillBe}
	}

	return osm.BatchAvailability{Status: osm.StatusNotYet}
}
