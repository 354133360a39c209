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
	"context"

	"github.com/rs/zerolog"

	osm "github.com/ryanhossain9797/osm-batching-tool/models/osm"
)

// Reader answers availability queries for numbered batch files.
type Reader interface {
	Batch(imp osm.Import, kind osm.ElementKind, number uint32) osm.BatchAvailability
}

// Starter launches background preparation of an import unless one is already
// underway.
type Starter interface {
	MaybeStart(imp osm.Import)
}

// Controller implements the request logic behind the OsmImport service:
// request validation, oracle queries and conditional preparation triggering.
type Controller struct {
	log      zerolog.Logger
	validate *Validator
	read     Reader
	start    Starter
}

// NewController creates a controller using the given oracle and pipeline
// starter.
func NewController(log zerolog.Logger, read Reader, start Starter) *Controller {
	c := Controller{
		log:      log.With().Str("component", "controller").Logger(),
		validate: NewValidator(),
		read:     read,
		start:    start,
	}

	return &c
}

// Ping answers a liveness probe.
func (c *Controller) Ping(_ context.Context, _ *PingRequest) (*PingResponse, error) {
	return &PingResponse{Message: "Pong"}, nil
}

// FetchImportBatch resolves the availability of one batch file. A request for
// an import whose preparation has not started triggers it in the background;
// the client polls until its batch appears or the completion marker rules it
// out.
func (c *Controller) FetchImportBatch(_ context.Context, req *FetchImportBatchRequest) (*FetchImportBatchResponse, error) {

	imp, kind, err := c.validate.Request(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("invalid batch request")
		res := FetchImportBatchResponse{
			Response: &FetchImportBatchResponse_Error{Error: err.Error()},
		}
		return &res, nil
	}

	c.log.Info().
		Str("type", string(imp.Type())).
		Str("scope", imp.Scope()).
		Str("element_type", string(kind)).
		Uint32("batch_number", req.BatchNumber).
		Msg("processing batch request")

	avail := c.read.Batch(imp, kind, req.BatchNumber)

	var res FetchImportBatchResponse
	switch avail.Status {
	case osm.StatusReadOK:
		res.Response = &FetchImportBatchResponse_BatchContent{BatchContent: avail.Content}
	case osm.StatusReadErr:
		res.Response = &FetchImportBatchResponse_Error{Error: avail.Message}
	case osm.StatusNeverWillBe:
		res.Response = &FetchImportBatchResponse_BatchesComplete{BatchesComplete: ""}
	default:
		c.start.MaybeStart(imp)
		res.Response = &FetchImportBatchResponse_BatchesPending{BatchesPending: ""}
	}

	return &res, nil
}
