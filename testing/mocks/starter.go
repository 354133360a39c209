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

type Starter struct {
	MaybeStartFunc func(imp osm.Import)
}

func BaselineStarter(t *testing.T) *Starter {
	t.Helper()

	s := Starter{
		MaybeStartFunc: func(osm.Import) {},
	}

	return &s
}

func (s *Starter) MaybeStart(imp osm.Import) {
	s.MaybeStartFunc(imp)
}
