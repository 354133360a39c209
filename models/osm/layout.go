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
	"path/filepath"
)

// Layout derives every path of the on-disk state tree from an import
// identifier. All pipeline state lives under a single root directory:
//
//	<root>/<type>/<scope>/lock
//	<root>/<type>/<scope>/<scope>.osm.pbf        (full archive)
//	<root>/<type>/<scope>/<scope>.osc.gz         (delta archive)
//	<root>/<type>/<scope>/<scope>.osm|.osc       (source document)
//	<root>/<type>/<scope>/batches/<kind>/<base>.batch_NNNNNN.xml
//	<root>/<type>/<scope>/batches/<kind>/<base>.batches_complete
//
// Layout values are cheap and safe to copy; they hold only the root.
type Layout struct {
	root string
}

// NewLayout creates a layout rooted at the given data directory.
func NewLayout(root string) Layout {
	return Layout{root: root}
}

// Root returns the data directory the layout is rooted at.
func (l Layout) Root() string {
	return l.root
}

// ImportDir returns the directory holding all state for one import.
func (l Layout) ImportDir(imp Import) string {
	return filepath.Join(l.root, string(imp.Type()), imp.Scope())
}

// LockFile returns the path of the advisory preparation lock.
func (l Layout) LockFile(imp Import) string {
	return filepath.Join(l.ImportDir(imp), "lock")
}

// SourceArchive returns the path the downloaded artifact is stored at.
func (l Layout) SourceArchive(imp Import) string {
	return filepath.Join(l.ImportDir(imp), imp.ArchiveBase())
}

// SourceXML returns the path of the uncompressed source document.
func (l Layout) SourceXML(imp Import) string {
	return filepath.Join(l.ImportDir(imp), imp.SourceBase())
}

// BatchesDir returns the directory holding the per-kind batch directories.
func (l Layout) BatchesDir(imp Import) string {
	return filepath.Join(l.ImportDir(imp), "batches")
}

// KindDir returns the directory holding the batches of one element kind.
func (l Layout) KindDir(imp Import, kind ElementKind) string {
	return filepath.Join(l.BatchesDir(imp), string(kind))
}

// BatchFile returns the path of the numbered batch file for the given kind.
func (l Layout) BatchFile(imp Import, kind ElementKind, number uint32) string {
	name := fmt.Sprintf("%s.batch_%06d.xml", imp.SourceBase(), number)
	return filepath.Join(l.KindDir(imp, kind), name)
}

// CompleteFile returns the path of the completion marker for the given kind.
// Its existence asserts that no further batches of that kind will appear.
func (l Layout) CompleteFile(imp Import, kind ElementKind) string {
	return filepath.Join(l.KindDir(imp, kind), imp.SourceBase()+".batches_complete")
}
