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
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
)

// Decompressor expands gzip archives into their sibling uncompressed files.
type Decompressor struct {
	log zerolog.Logger
}

// NewDecompressor creates a gzip decompressor.
func NewDecompressor(log zerolog.Logger) *Decompressor {
	d := Decompressor{
		log: log.With().Str("component", "decompressor").Logger(),
	}

	return &d
}

// Gunzip inflates src into dst. If dst already exists the call is a no-op.
func (d *Decompressor) Gunzip(src string, dst string) error {

	_, err := os.Stat(dst)
	if err == nil {
		d.log.Debug().Str("dst", dst).Msg("decompressed file already exists, skipping")
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("could not stat destination: %w", err)
	}

	d.log.Info().Str("src", src).Str("dst", dst).Msg("decompressing archive")

	archive, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open archive: %w", err)
	}
	defer archive.Close()

	reader, err := gzip.NewReader(archive)
	if err != nil {
		return fmt.Errorf("could not create gzip reader: %w", err)
	}
	defer reader.Close()

	file, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	if err != nil {
		return fmt.Errorf("could not decompress archive: %w", err)
	}

	return nil
}
