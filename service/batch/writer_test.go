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

package batch_test

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
	"github.com/ryanhossain9797/osm-batching-tool/service/batch"
	"github.com/ryanhossain9797/osm-batching-tool/testing/mocks"
)

const testProducer = "producer-token"

// newWriter sets up a writer over a temporary data directory and materializes
// the source document of the given import.
func newWriter(t *testing.T, imp osm.Import, source string) (*batch.Writer, osm.Layout) {
	t.Helper()

	layout := osm.NewLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(layout.ImportDir(imp), 0755))
	require.NoError(t, os.WriteFile(layout.SourceXML(imp), []byte(source), 0644))

	return batch.NewWriter(mocks.NoopLogger, layout, testProducer), layout
}

// parseRoot decodes a batch document and returns its root tag and attributes,
// failing the test if the document is not well-formed XML.
func parseRoot(t *testing.T, content string) (string, map[string]string) {
	t.Helper()

	decoder := xml.NewDecoder(strings.NewReader(content))
	var tag string
	attributes := make(map[string]string)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if tag == "" {
			tag = start.Name.Local
			for _, attr := range start.Attr {
				attributes[attr.Name.Local] = attr.Value
			}
		}
	}

	require.NotEmpty(t, tag)
	return tag, attributes
}

func TestWriter_FullImport(t *testing.T) {
	imp := mocks.GenericFullImport()
	writer, layout := newWriter(t, imp,
		`<osm generator="g"><node id="1" lat="0" lon="0"/><way id="2"><nd ref="1"/></way></osm>`)

	require.NoError(t, writer.Run(imp))

	nodes, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
	require.NoError(t, err)
	assert.Contains(t, string(nodes), `<node id="1" lat="0" lon="0"/>`)
	tag, attributes := parseRoot(t, string(nodes))
	assert.Equal(t, "osm", tag)
	assert.Equal(t, testProducer+"; g", attributes["generator"])

	ways, err := os.ReadFile(layout.BatchFile(imp, osm.KindWay, 0))
	require.NoError(t, err)
	assert.Contains(t, string(ways), `<way id="2"><nd ref="1"/></way>`)

	_, err = os.Stat(layout.BatchFile(imp, osm.KindRelation, 0))
	assert.True(t, os.IsNotExist(err))

	for _, kind := range osm.AllKinds() {
		_, err := os.Stat(layout.CompleteFile(imp, kind))
		assert.NoError(t, err)
	}

	complete, err := os.ReadFile(layout.CompleteFile(imp, osm.KindRelation))
	require.NoError(t, err)
	assert.Equal(t, "wrote 0 batches from 010123.osm\n", string(complete))
}

func TestWriter_DeltaContainerWrapping(t *testing.T) {
	imp := mocks.GenericDeltaImport()
	writer, layout := newWriter(t, imp,
		`<osmChange version="0.6"><modify><node id="5" lat="1" lon="2"/></modify><delete><way id="7"/></delete></osmChange>`)

	require.NoError(t, writer.Run(imp))

	nodes, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
	require.NoError(t, err)
	assert.Contains(t, string(nodes), "<modify>\n<node id=\"5\" lat=\"1\" lon=\"2\"/>\n</modify>")
	tag, _ := parseRoot(t, string(nodes))
	assert.Equal(t, "osmChange", tag)

	ways, err := os.ReadFile(layout.BatchFile(imp, osm.KindWay, 0))
	require.NoError(t, err)
	assert.Contains(t, string(ways), "<delete>\n<way id=\"7\"/>\n</delete>")
}

func TestWriter_DeltaContainerCleared(t *testing.T) {
	imp := mocks.GenericDeltaImport()
	writer, layout := newWriter(t, imp,
		`<osmChange><modify><node id="5"/></modify><node id="6"/></osmChange>`)

	require.NoError(t, writer.Run(imp))

	nodes, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
	require.NoError(t, err)
	assert.Contains(t, string(nodes), "<modify>\n<node id=\"5\"/>\n</modify>")

	// The second node sits outside any change container and must not be
	// wrapped.
	assert.Contains(t, string(nodes), "\n<node id=\"6\"/>\n")
	assert.Equal(t, 1, strings.Count(string(nodes), "<modify>"))
}

func TestWriter_BatchBoundary(t *testing.T) {
	imp := mocks.GenericFullImport()

	var source strings.Builder
	source.WriteString(`<osm generator="g">`)
	for i := 0; i < 501; i++ {
		source.WriteString(fmt.Sprintf(`<node id="%d" lat="0" lon="0"/>`, i+1))
	}
	source.WriteString(`</osm>`)

	writer, layout := newWriter(t, imp, source.String())

	require.NoError(t, writer.Run(imp))

	first, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
	require.NoError(t, err)
	assert.Equal(t, 500, strings.Count(string(first), "<node "))

	second, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(second), "<node "))
	assert.Contains(t, string(second), `<node id="501" lat="0" lon="0"/>`)

	_, err = os.Stat(layout.BatchFile(imp, osm.KindNode, 2))
	assert.True(t, os.IsNotExist(err))

	complete, err := os.ReadFile(layout.CompleteFile(imp, osm.KindNode))
	require.NoError(t, err)
	assert.Equal(t, "wrote 2 batches from 010123.osm\n", string(complete))
}

func TestWriter_OrderWithinKindPreserved(t *testing.T) {
	imp := mocks.GenericFullImport()
	writer, layout := newWriter(t, imp,
		`<osm><node id="1"/><way id="10"/><node id="2"/><relation id="20"/><node id="3"/></osm>`)

	require.NoError(t, writer.Run(imp))

	nodes, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
	require.NoError(t, err)

	first := strings.Index(string(nodes), `<node id="1"/>`)
	second := strings.Index(string(nodes), `<node id="2"/>`)
	third := strings.Index(string(nodes), `<node id="3"/>`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestWriter_GeneratorRewrite(t *testing.T) {
	imp := mocks.GenericFullImport()

	t.Run("source with generator", func(t *testing.T) {
		writer, layout := newWriter(t, imp,
			`<osm version="0.6" generator="osmium/1.0"><node id="1"/></osm>`)

		require.NoError(t, writer.Run(imp))

		nodes, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
		require.NoError(t, err)
		tag, attributes := parseRoot(t, string(nodes))
		assert.Equal(t, "osm", tag)
		assert.Equal(t, "0.6", attributes["version"])
		assert.Equal(t, testProducer+"; osmium/1.0", attributes["generator"])
	})

	t.Run("source without generator", func(t *testing.T) {
		writer, layout := newWriter(t, imp, `<osm version="0.6"><node id="1"/></osm>`)

		require.NoError(t, writer.Run(imp))

		nodes, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
		require.NoError(t, err)
		_, attributes := parseRoot(t, string(nodes))
		assert.Equal(t, testProducer+"; ", attributes["generator"])
	})
}

func TestWriter_Escaping(t *testing.T) {
	imp := mocks.GenericFullImport()
	writer, layout := newWriter(t, imp,
		`<osm><relation id="9"><tag k="name" v="A &amp; B &lt;quoted&gt;"/>free &amp; text</relation></osm>`)

	require.NoError(t, writer.Run(imp))

	relations, err := os.ReadFile(layout.BatchFile(imp, osm.KindRelation, 0))
	require.NoError(t, err)
	assert.Contains(t, string(relations), `v="A &amp; B &lt;quoted&gt;"`)
	assert.Contains(t, string(relations), `free &amp; text`)

	// Round-trip: a conformant parser reads back the original logical values.
	_, attributes := parseRoot(t, string(relations))
	assert.NotEmpty(t, attributes["generator"])

	decoder := xml.NewDecoder(strings.NewReader(string(relations)))
	var values []string
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == "v" {
				values = append(values, attr.Value)
			}
		}
	}
	assert.Contains(t, values, `A & B <quoted>`)
}

func TestWriter_SkipsWhenAllComplete(t *testing.T) {
	imp := mocks.GenericFullImport()
	writer, layout := newWriter(t, imp, `<osm><node id="1"/></osm>`)

	require.NoError(t, writer.Run(imp))

	// Remove the source document; a second run must not need it.
	require.NoError(t, os.Remove(layout.SourceXML(imp)))

	before, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
	require.NoError(t, err)

	require.NoError(t, writer.Run(imp))

	after, err := os.ReadFile(layout.BatchFile(imp, osm.KindNode, 0))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWriter_ResetsPartialBatches(t *testing.T) {
	imp := mocks.GenericFullImport()
	writer, layout := newWriter(t, imp, `<osm><node id="1"/></osm>`)

	// A previous interrupted run left partial output without completion
	// markers for every kind.
	require.NoError(t, os.MkdirAll(layout.KindDir(imp, osm.KindNode), 0755))
	stale := layout.BatchFile(imp, osm.KindNode, 7)
	require.NoError(t, os.WriteFile(stale, []byte(`stale`), 0644))
	require.NoError(t, os.WriteFile(layout.CompleteFile(imp, osm.KindNode), []byte("wrote 8 batches\n"), 0644))

	require.NoError(t, writer.Run(imp))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))

	complete, err := os.ReadFile(layout.CompleteFile(imp, osm.KindNode))
	require.NoError(t, err)
	assert.Equal(t, "wrote 1 batches from 010123.osm\n", string(complete))
}

func TestWriter_MissingRootElement(t *testing.T) {
	imp := mocks.GenericFullImport()
	writer, _ := newWriter(t, imp, `<bogus><node id="1"/></bogus>`)

	err := writer.Run(imp)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not find root element")
}

func TestWriter_MissingSource(t *testing.T) {
	imp := mocks.GenericFullImport()
	layout := osm.NewLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(layout.ImportDir(imp), 0755))

	writer := batch.NewWriter(mocks.NoopLogger, layout, testProducer)
	err := writer.Run(imp)

	assert.Error(t, err)
}

func TestWriter_NoTempFilesLeft(t *testing.T) {
	imp := mocks.GenericFullImport()
	writer, layout := newWriter(t, imp, `<osm><node id="1"/><way id="2"/></osm>`)

	require.NoError(t, writer.Run(imp))

	for _, kind := range osm.AllKinds() {
		entries, err := os.ReadDir(layout.KindDir(imp, kind))
		require.NoError(t, err)
		for _, entry := range entries {
			assert.False(t, strings.HasSuffix(entry.Name(), ".temp"))
		}
	}
}
