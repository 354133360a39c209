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
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
)

// Global variables that can be used for testing. They are non-nil valid
// values for the types commonly needed to test components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericContent = "<?xml version='1.0' encoding='UTF-8'?>\n<osm generator=\"test\">\n</osm>\n"
)

// GenericFullImport returns a valid full import identifier.
func GenericFullImport() osm.Import {
	date, _ := osm.ParseFullDate("010123")
	return osm.NewFullImport(date)
}

// GenericDeltaImport returns a valid delta import identifier.
func GenericDeltaImport() osm.Import {
	abc, _ := osm.ParseDeltaABC("001/002/003")
	return osm.NewDeltaImport(abc)
}
