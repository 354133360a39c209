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
	"errors"

	"github.com/go-playground/validator/v10"

	osm "github.com/ryanhossain9797/osm-batching-tool/models/osm"
)

// Wire-compatible validation messages, returned verbatim in the error arm of
// the response oneof.
const (
	dateInvalid    = "date arg invalid (expected ddmmyy)"
	abcInvalid     = "abc arg invalid (expected AAA/BBB/CCC)"
	importUnknown  = "import type is unknown"
	elementInvalid = "element type invalid (expected node, way or relation)"
)

var (
	errDateInvalid    = errors.New(dateInvalid)
	errAbcInvalid     = errors.New(abcInvalid)
	errImportUnknown  = errors.New(importUnknown)
	errElementInvalid = errors.New(elementInvalid)

	// Special case in the validator library that shouldn't really happen
	// with correct usage.
	errInvalidValidation = errors.New("invalid validation")
)

// batchRequest is the flattened form of a FetchImportBatchRequest the
// validator library operates on. Which records the arm of the import type
// oneof that was set.
type batchRequest struct {
	Which       string
	FullDate    string
	DeltaAbc    string
	ElementType string `validate:"required,oneof=node way relation"`
}

// Validator checks inbound batch requests before they reach the oracle.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator for batch requests.
func NewValidator() *Validator {

	v := validator.New()
	v.RegisterStructValidation(importTypeValidator, batchRequest{})

	return &Validator{validate: v}
}

// importTypeValidator checks that an import identifier is present and
// well-formed, delegating the format rules to the identifier parsers.
func importTypeValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(batchRequest)

	switch req.Which {
	case "full":
		_, err := osm.ParseFullDate(req.FullDate)
		if err != nil {
			sl.ReportError(req.FullDate, "FullDate", "FullDate", "full_date", "")
		}
	case "delta":
		_, err := osm.ParseDeltaABC(req.DeltaAbc)
		if err != nil {
			sl.ReportError(req.DeltaAbc, "DeltaAbc", "DeltaAbc", "delta_abc", "")
		}
	default:
		sl.ReportError(req.Which, "Which", "Which", "required", "")
	}
}

// Request validates a batch request and decodes it into domain identifiers.
// The returned error message is safe to send back on the wire verbatim.
func (v *Validator) Request(req *FetchImportBatchRequest) (osm.Import, osm.ElementKind, error) {

	request := batchRequest{
		ElementType: req.ElementType,
	}
	switch it := req.ImportType.(type) {
	case *FetchImportBatchRequest_FullDate:
		request.Which = "full"
		request.FullDate = it.FullDate
	case *FetchImportBatchRequest_DeltaAbc:
		request.Which = "delta"
		request.DeltaAbc = it.DeltaAbc
	}

	err := v.validate.Struct(request)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			switch verr.StructField() {
			case "Which":
				return osm.Import{}, "", errImportUnknown
			case "FullDate":
				return osm.Import{}, "", errDateInvalid
			case "DeltaAbc":
				return osm.Import{}, "", errAbcInvalid
			case "ElementType":
				return osm.Import{}, "", errElementInvalid
			}
		}
		return osm.Import{}, "", errInvalidValidation
	}
	if err != nil {
		return osm.Import{}, "", errInvalidValidation
	}

	kind, err := osm.ParseElementKind(req.ElementType)
	if err != nil {
		return osm.Import{}, "", errElementInvalid
	}

	if request.Which == "delta" {
		abc, err := osm.ParseDeltaABC(request.DeltaAbc)
		if err != nil {
			return osm.Import{}, "", errAbcInvalid
		}
		return osm.NewDeltaImport(abc), kind, nil
	}

	date, err := osm.ParseFullDate(request.FullDate)
	if err != nil {
		return osm.Import{}, "", errDateInvalid
	}

	return osm.NewFullImport(date), kind, nil
}
