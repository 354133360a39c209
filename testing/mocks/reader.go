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

package mocks

import (
	"testing"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
)

type Reader struct {
	BatchFunc func(imp osm.Import, kind osm.ElementKind, number uint32) osm.BatchAvailability
}

func BaselineReader(t *testing.T) *Reader {
	t.Helper()

	r := Reader{
		BatchFunc: func(osm.Import, osm.ElementKind, uint32) osm.BatchAvailability {
			return osm.BatchAvailability{
				Status:  osm.StatusReadOK,
				Content: GenericContent,
			}
		},
	}

	return &r
}

func (r *Reader) Batch(imp osm.Import, kind osm.ElementKind, number uint32) osm.BatchAvailability {
	return r.BatchFunc(imp, kind, number)
}
