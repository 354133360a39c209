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

package rest

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
)

// Controller serves the read-only operational status API. Everything it
// reports is derived from the filesystem layout; it never mutates state.
type Controller struct {
	layout osm.Layout
}

// NewController creates a status controller over the given layout.
func NewController(layout osm.Layout) *Controller {
	c := Controller{
		layout: layout,
	}

	return &c
}

// KindStatus reports batching progress for one element kind.
type KindStatus struct {
	Batches  int  `json:"batches"`
	Complete bool `json:"complete"`
}

// ImportStatus reports the preparation state of one import.
type ImportStatus struct {
	Type   string                `json:"type"`
	Scope  string                `json:"scope"`
	Locked bool                  `json:"locked"`
	Kinds  map[string]KindStatus `json:"kinds"`
}

// Health answers a liveness probe.
func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Import reports the state of one import: whether a preparation lock is
// held and, per element kind, how many batch files exist and whether the
// completion marker is present. Delta imports are addressed by the
// underscore form of their sequence number.
func (c *Controller) Import(ctx echo.Context) error {

	imp, err := parseImport(ctx.Param("type"), ctx.Param("scope"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	_, err = os.Stat(c.layout.ImportDir(imp))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Errorf("unknown import: %s", imp.Scope()))
	}

	_, err = os.Stat(c.layout.LockFile(imp))
	locked := err == nil

	kinds := make(map[string]KindStatus)
	for _, kind := range osm.AllKinds() {
		pattern := filepath.Join(c.layout.KindDir(imp, kind), imp.SourceBase()+".batch_*.xml")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		}

		_, err = os.Stat(c.layout.CompleteFile(imp, kind))
		kinds[string(kind)] = KindStatus{
			Batches:  len(matches),
			Complete: err == nil,
		}
	}

	res := ImportStatus{
		Type:   string(imp.Type()),
		Scope:  imp.Scope(),
		Locked: locked,
		Kinds:  kinds,
	}

	return ctx.JSON(http.StatusOK, res)
}

// parseImport decodes the path parameters into an import identifier.
func parseImport(importType string, scope string) (osm.Import, error) {
	switch osm.ImportType(importType) {
	case osm.TypeFull:
		date, err := osm.ParseFullDate(scope)
		if err != nil {
			return osm.Import{}, err
		}
		return osm.NewFullImport(date), nil
	case osm.TypeDelta:
		abc, err := osm.ParseDeltaABC(strings.ReplaceAll(scope, "_", "/"))
		if err != nil {
			return osm.Import{}, err
		}
		return osm.NewDeltaImport(abc), nil
	}
	return osm.Import{}, fmt.Errorf("invalid import type: %s (expected full or delta)", importType)
}
