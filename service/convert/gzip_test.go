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

package convert_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanhossain9797/osm-batching-tool/service/convert"
	"github.com/ryanhossain9797/osm-batching-tool/testing/mocks"
)

func TestDecompressor_Gunzip(t *testing.T) {
	payload := []byte(`<osmChange version="0.6"><modify><node id="5"/></modify></osmChange>`)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	dir := t.TempDir()
	src := filepath.Join(dir, "001_002_003.osc.gz")
	dst := filepath.Join(dir, "001_002_003.osc")
	require.NoError(t, os.WriteFile(src, buf.Bytes(), 0644))

	decompressor := convert.NewDecompressor(mocks.NoopLogger)
	err = decompressor.Gunzip(src, dst)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecompressor_GunzipSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "001_002_003.osc.gz")
	dst := filepath.Join(dir, "001_002_003.osc")

	// The archive is not even valid gzip; it must not be read.
	require.NoError(t, os.WriteFile(src, []byte(`not gzip`), 0644))
	require.NoError(t, os.WriteFile(dst, []byte(`already inflated`), 0644))

	decompressor := convert.NewDecompressor(mocks.NoopLogger)
	err := decompressor.Gunzip(src, dst)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte(`already inflated`), got)
}

func TestDecompressor_GunzipBadArchive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "001_002_003.osc.gz")
	dst := filepath.Join(dir, "001_002_003.osc")
	require.NoError(t, os.WriteFile(src, []byte(`not gzip`), 0644))

	decompressor := convert.NewDecompressor(mocks.NoopLogger)
	err := decompressor.Gunzip(src, dst)

	assert.Error(t, err)
}

func TestDecompressor_GunzipMissingArchive(t *testing.T) {
	dir := t.TempDir()

	decompressor := convert.NewDecompressor(mocks.NoopLogger)
	err := decompressor.Gunzip(filepath.Join(dir, "missing.osc.gz"), filepath.Join(dir, "missing.osc"))

	assert.Error(t, err)
}
