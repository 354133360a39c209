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

package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// DefaultOsmiumBinary is the binary the converter invokes unless configured
// otherwise.
const DefaultOsmiumBinary = "osmium"

// minPBFSize guards against small HTML error bodies that were accepted as a
// download payload; no real PBF extract is this small.
const minPBFSize = 1000

// Converter transforms the binary PBF map format into the XML map format by
// invoking the external osmium tool.
type Converter struct {
	log    zerolog.Logger
	binary string
}

// NewConverter creates a converter that runs the given osmium binary.
func NewConverter(log zerolog.Logger, binary string) *Converter {
	if binary == "" {
		binary = DefaultOsmiumBinary
	}

	c := Converter{
		log:    log.With().Str("component", "converter").Logger(),
		binary: binary,
	}

	return &c
}

// PBFToXML converts src into an XML document at dst. The output is written to
// a temporary sibling first and renamed into place on success, so dst never
// exists half-written.
func (c *Converter) PBFToXML(ctx context.Context, src string, dst string) error {

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("could not stat PBF file: %w", err)
	}
	if info.Size() < minPBFSize {
		c.log.Error().Str("src", src).Int64("size_bytes", info.Size()).
			Msg("PBF file is suspiciously small, likely a 404 error page")
		return fmt.Errorf("Downloaded PBF file appears to be invalid (too small)")
	}

	temp := dst + ".temp"

	c.log.Info().Str("src", src).Str("dst", dst).Msg("converting PBF to XML")

	cmd := exec.CommandContext(ctx, c.binary, "cat", src, "-F", "osm.pbf", "-o", temp, "-f", "osm")
	output, err := cmd.CombinedOutput()
	if err != nil {
		c.log.Error().Err(err).Str("output", string(output)).Msg("osmium invocation failed")
		if _, statErr := os.Stat(temp); statErr == nil {
			removeErr := os.Remove(temp)
			if removeErr != nil {
				c.log.Warn().Err(removeErr).Str("temp", temp).Msg("could not remove temporary file")
			}
		}
		return fmt.Errorf("could not convert PBF to XML (is %s installed?): %w", c.binary, err)
	}

	err = os.Rename(temp, dst)
	if err != nil {
		return fmt.Errorf("could not move converted file into place: %w", err)
	}

	return nil
}
