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
)

// ElementKind is one of the three top-level OSM element kinds. The set is
// closed; batches are grouped by it.
type ElementKind string

const (
	KindNode     ElementKind = "node"
	KindWay      ElementKind = "way"
	KindRelation ElementKind = "relation"
)

// AllKinds returns the element kinds in their conventional order. Ordering in
// source documents is not assumed anywhere.
func AllKinds() []ElementKind {
	return []ElementKind{KindNode, KindWay, KindRelation}
}

// ParseElementKind validates an element kind received over the wire.
func ParseElementKind(kind string) (ElementKind, error) {
	switch ElementKind(kind) {
	case KindNode, KindWay, KindRelation:
		return ElementKind(kind), nil
	}
	return "", fmt.Errorf("invalid element type: %s (expected node, way or relation)", kind)
}
