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

// BatchStatus classifies the availability of one numbered batch file.
type BatchStatus uint8

const (
	// StatusReadOK means the batch file exists and was read successfully.
	StatusReadOK BatchStatus = iota + 1
	// StatusReadErr means the batch file exists but reading it failed.
	StatusReadErr
	// StatusNeverWillBe means the batch file does not exist and the
	// completion marker asserts it never will.
	StatusNeverWillBe
	// StatusNotYet means the batch file does not exist and preparation has
	// not (visibly) finished for its kind.
	StatusNotYet
)

// BatchAvailability is the outcome of one availability probe. Content is set
// for StatusReadOK, Message for StatusReadErr.
type BatchAvailability struct {
	Status  BatchStatus
	Content string
	Message string
}
