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

package osm

import (
	"fmt"
	"regexp"
	"strings"
)

// ImportType discriminates between the two kinds of imports the service can
// prepare: a full snapshot of the region or an incremental change set.
type ImportType string

const (
	TypeFull  ImportType = "full"
	TypeDelta ImportType = "delta"
)

var (
	fullDateRegex = regexp.MustCompile(`^[0-9]{6}$`)
	deltaABCRegex = regexp.MustCompile(`^[0-9]{3}/[0-9]{3}/[0-9]{3}$`)
)

// FullDate identifies a full snapshot by its six-digit date (ddmmyy).
type FullDate struct {
	date string
}

// ParseFullDate validates the given string as a six-digit snapshot date.
func ParseFullDate(date string) (FullDate, error) {
	if !fullDateRegex.MatchString(date) {
		return FullDate{}, fmt.Errorf("invalid date format: %s (expected ddmmyy)", date)
	}
	return FullDate{date: date}, nil
}

func (f FullDate) String() string {
	return f.date
}

// DeltaABC identifies an incremental change set by its three-part sequence
// number, canonically written AAA/BBB/CCC.
type DeltaABC struct {
	abc string
}

// ParseDeltaABC validates the given string as a slash-separated triple of
// three-digit segments.
func ParseDeltaABC(abc string) (DeltaABC, error) {
	if !deltaABCRegex.MatchString(abc) {
		return DeltaABC{}, fmt.Errorf("invalid ABC format: %s (expected AAA/BBB/CCC)", abc)
	}
	return DeltaABC{abc: abc}, nil
}

func (d DeltaABC) String() string {
	return d.abc
}

// Underscored returns the filesystem-safe form of the sequence number, with
// the slashes replaced by underscores.
func (d DeltaABC) Underscored() string {
	return strings.ReplaceAll(d.abc, "/", "_")
}

// Import is the tagged union of the two import identifiers. It uniquely keys
// one preparation pipeline run and carries the path and URL derivations both
// sides share.
type Import struct {
	typ   ImportType
	full  FullDate
	delta DeltaABC
}

// NewFullImport wraps a full snapshot date as an import identifier.
func NewFullImport(date FullDate) Import {
	return Import{typ: TypeFull, full: date}
}

// NewDeltaImport wraps a change set sequence number as an import identifier.
func NewDeltaImport(abc DeltaABC) Import {
	return Import{typ: TypeDelta, delta: abc}
}

// Type returns the union discriminator.
func (i Import) Type() ImportType {
	return i.typ
}

// Scope returns the filesystem scope of the import: the raw date for a full
// import, the underscore form of the sequence number for a delta import.
func (i Import) Scope() string {
	if i.typ == TypeDelta {
		return i.delta.Underscored()
	}
	return i.full.String()
}

// RemoteScope returns the identifier as it appears in remote URLs: the raw
// date for a full import, the canonical slash form for a delta import.
func (i Import) RemoteScope() string {
	if i.typ == TypeDelta {
		return i.delta.String()
	}
	return i.full.String()
}

// SourceExtension returns the extension of the uncompressed source document.
func (i Import) SourceExtension() string {
	if i.typ == TypeDelta {
		return ".osc"
	}
	return ".osm"
}

// SourceBase returns the file name of the uncompressed source document.
func (i Import) SourceBase() string {
	return i.Scope() + i.SourceExtension()
}

// ArchiveBase returns the file name of the downloaded source artifact.
func (i Import) ArchiveBase() string {
	if i.typ == TypeDelta {
		return i.Scope() + ".osc.gz"
	}
	return i.Scope() + ".osm.pbf"
}

// BatchSize returns the number of top-level elements each non-final batch
// file holds for this import.
func (i Import) BatchSize() int {
	if i.typ == TypeDelta {
		return 1000
	}
	return 500
}
