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

package batch

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
	"github.com/ryanhossain9797/osm-batching-tool/service/metrics"
)

// DefaultProducer is the token stamped into the generator attribute of every
// batch file, ahead of the source document's own generator.
const DefaultProducer = "Chaldal osm-import-rust"

const xmlHeader = "<?xml version='1.0' encoding='UTF-8'?>"

var (
	attrEscaper = strings.NewReplacer("&", "&amp;", "\"", "&quot;", "<", "&lt;", ">", "&gt;")
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// rootInfo captures the tag and attribute set of the source document's root
// element. It is embedded into every batch file written for that document.
type rootInfo struct {
	tag        string
	attributes map[string]string
}

// Writer streams the source document of an import and re-emits its top-level
// elements, grouped by kind, into numbered batch files. Every batch file is a
// standalone XML document carrying the source root element; a completion
// marker per kind is written once no further batches of that kind can appear.
type Writer struct {
	log      zerolog.Logger
	layout   osm.Layout
	producer string
}

// NewWriter creates a batch writer rooted at the given layout. The producer
// token is prepended to the generator attribute of emitted documents.
func NewWriter(log zerolog.Logger, layout osm.Layout, producer string) *Writer {
	if producer == "" {
		producer = DefaultProducer
	}

	w := Writer{
		log:      log.With().Str("component", "batch_writer").Logger(),
		layout:   layout,
		producer: producer,
	}

	return &w
}

// Run batches the source document of the given import. If completion markers
// for all three element kinds already exist, the call returns without reading
// the input; otherwise any previous batches directory is discarded and the
// document is batched from scratch.
func (w *Writer) Run(imp osm.Import) error {

	done := true
	for _, kind := range osm.AllKinds() {
		_, err := os.Stat(w.layout.CompleteFile(imp, kind))
		if err != nil {
			done = false
			break
		}
	}
	if done {
		w.log.Debug().Str("scope", imp.Scope()).Msg("all batches already complete, skipping")
		return nil
	}

	batchesDir := w.layout.BatchesDir(imp)
	_, err := os.Stat(batchesDir)
	if err == nil {
		err = os.RemoveAll(batchesDir)
		if err != nil {
			return fmt.Errorf("could not remove stale batches directory: %w", err)
		}
	}
	for _, kind := range osm.AllKinds() {
		err = os.MkdirAll(w.layout.KindDir(imp, kind), 0755)
		if err != nil {
			return fmt.Errorf("could not create batches directory: %w", err)
		}
	}

	source := w.layout.SourceXML(imp)
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("could not read source document: %w", err)
	}

	root, err := w.captureRoot(data)
	if err != nil {
		return err
	}

	run := writerRun{
		writer:  w,
		imp:     imp,
		delta:   imp.Type() == osm.TypeDelta,
		size:    imp.BatchSize(),
		root:    root,
		buffers: make(map[osm.ElementKind][]string),
		counts:  make(map[osm.ElementKind]uint32),
	}

	err = run.process(data)
	if err != nil {
		return err
	}

	return run.finalize()
}

// captureRoot scans the document for the first osm or osmChange start tag and
// records its attribute set, with the generator attribute overwritten to name
// this producer ahead of the original one.
func (w *Writer) captureRoot(data []byte) (rootInfo, error) {

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rootInfo{}, fmt.Errorf("could not parse XML while finding root element: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "osm" && start.Name.Local != "osmChange" {
			continue
		}

		attributes := make(map[string]string)
		for _, attr := range start.Attr {
			attributes[attr.Name.Local] = attr.Value
		}
		attributes["generator"] = fmt.Sprintf("%s; %s", w.producer, attributes["generator"])

		root := rootInfo{
			tag:        start.Name.Local,
			attributes: attributes,
		}

		return root, nil
	}

	return rootInfo{}, errors.New("could not find root element (osm or osmChange)")
}

// writerRun holds the state of one pass over a source document.
type writerRun struct {
	writer *Writer
	imp    osm.Import
	delta  bool
	size   int
	root   rootInfo

	// Extraction state: collecting is set while inside a top-level element
	// of kind kind, with depth counting nesting relative to its opening tag.
	// For delta documents, container tracks the enclosing change-operation
	// wrapper (create, modify or delete).
	collecting bool
	kind       osm.ElementKind
	depth      int
	container  string

	fragment fragment
	buffers  map[osm.ElementKind][]string
	counts   map[osm.ElementKind]uint32
	total    int
}

// process runs the extraction state machine over the document.
func (r *writerRun) process(data []byte) error {

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("could not parse XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			err = r.start(t)
		case xml.EndElement:
			err = r.end(t)
		case xml.CharData:
			r.text(string(t))
		}
		if err != nil {
			return err
		}
	}

	r.writer.log.Info().Int("elements", r.total).Str("scope", r.imp.Scope()).
		Msg("finished extracting elements")

	return nil
}

func (r *writerRun) start(t xml.StartElement) error {
	name := t.Name.Local
	switch {
	case isKind(name):
		// A kind tag always begins a new top-level element; the grammar
		// never nests one inside another.
		r.fragment.reset()
		if r.delta && r.container != "" {
			r.fragment.raw("<" + r.container + ">\n")
		}
		r.fragment.open(name, t.Attr)
		r.collecting = true
		r.kind = osm.ElementKind(name)
		r.depth = 1

	case r.delta && isContainer(name):
		r.container = name

	default:
		if r.collecting {
			r.depth++
			r.fragment.open(name, t.Attr)
		}
	}

	return nil
}

func (r *writerRun) end(t xml.EndElement) error {
	name := t.Name.Local
	switch {
	case isKind(name):
		if r.collecting && r.depth == 1 {
			r.fragment.close(name)
			if r.delta && r.container != "" {
				r.fragment.raw("\n</" + r.container + ">")
			}
			r.collecting = false
			r.depth = 0
			return r.push()
		}
		if r.collecting {
			r.fragment.close(name)
			r.depth--
		}

	case r.delta && isContainer(name):
		r.container = ""

	default:
		if r.collecting && r.depth > 1 {
			r.fragment.close(name)
			r.depth--
		}
	}

	return nil
}

func (r *writerRun) text(text string) {
	if !r.collecting {
		return
	}
	// Whitespace between elements is insignificant and discarded.
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	r.fragment.text(trimmed)
}

// push moves the accumulated fragment into the pending buffer of its kind and
// flushes a numbered batch once the buffer reaches the size bound.
func (r *writerRun) push() error {
	kind := r.kind
	r.buffers[kind] = append(r.buffers[kind], r.fragment.String())
	r.total++

	if len(r.buffers[kind]) < r.size {
		return nil
	}

	err := r.flush(kind)
	if err != nil {
		return err
	}
	r.buffers[kind] = nil

	return nil
}

// flush writes the pending buffer of the given kind as the next numbered
// batch file, publishing it atomically via a temporary sibling.
func (r *writerRun) flush(kind osm.ElementKind) error {

	path := r.writer.layout.BatchFile(r.imp, kind, r.counts[kind])
	temp := path + ".temp"

	var content strings.Builder
	content.WriteString(xmlHeader)
	content.WriteByte('\n')
	content.WriteString("<" + r.root.tag)

	// Sorted emission keeps output deterministic; consumers parse XML and
	// must not depend on attribute order either way.
	keys := make([]string, 0, len(r.root.attributes))
	for key := range r.root.attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		content.WriteString(fmt.Sprintf(" %s=\"%s\"", key, attrEscaper.Replace(r.root.attributes[key])))
	}
	content.WriteString(">\n")

	for _, element := range r.buffers[kind] {
		content.WriteString(element)
		content.WriteByte('\n')
	}

	content.WriteString("</" + r.root.tag + ">\n")

	err := os.WriteFile(temp, []byte(content.String()), 0644)
	if err != nil {
		return fmt.Errorf("could not write batch file: %w", err)
	}
	err = os.Rename(temp, path)
	if err != nil {
		return fmt.Errorf("could not publish batch file: %w", err)
	}

	r.counts[kind]++
	metrics.BatchesWritten.WithLabelValues(string(kind)).Inc()

	r.writer.log.Debug().Str("kind", string(kind)).Uint32("batch", r.counts[kind]-1).
		Msg("batch file written")

	return nil
}

// finalize flushes leftover buffers and writes the completion markers. The
// marker for a kind is only written once all of its batches are on disk.
func (r *writerRun) finalize() error {

	var errs *multierror.Error
	for _, kind := range osm.AllKinds() {
		if len(r.buffers[kind]) > 0 {
			err := r.flush(kind)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("could not flush final %s batch: %w", kind, err))
				continue
			}
			r.buffers[kind] = nil
		}

		message := fmt.Sprintf("wrote %d batches from %s\n", r.counts[kind], r.imp.SourceBase())
		err := os.WriteFile(r.writer.layout.CompleteFile(r.imp, kind), []byte(message), 0644)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("could not write %s completion marker: %w", kind, err))
		}
	}

	return errs.ErrorOrNil()
}

func isKind(name string) bool {
	return name == "node" || name == "way" || name == "relation"
}

func isContainer(name string) bool {
	return name == "create" || name == "modify" || name == "delete"
}

// fragment accumulates the serialized form of one top-level element. Start
// tags are held open until the next event decides whether they close as a
// self-closing tag or with children.
type fragment struct {
	builder strings.Builder
	pending bool
}

func (f *fragment) reset() {
	f.builder.Reset()
	f.pending = false
}

// open appends a start tag with re-escaped attributes, leaving the closing
// bracket undecided.
func (f *fragment) open(name string, attrs []xml.Attr) {
	f.settle()
	f.builder.WriteString("<" + name)
	for _, attr := range attrs {
		f.builder.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name.Local, attrEscaper.Replace(attr.Value)))
	}
	f.pending = true
}

// close appends the end of the current element: a self-closing bracket when
// the start tag is still open, a full closing tag otherwise.
func (f *fragment) close(name string) {
	if f.pending {
		f.builder.WriteString("/>")
		f.pending = false
		return
	}
	f.builder.WriteString("</" + name + ">")
}

func (f *fragment) text(text string) {
	f.settle()
	f.builder.WriteString(textEscaper.Replace(text))
}

func (f *fragment) raw(s string) {
	f.settle()
	f.builder.WriteString(s)
}

// settle closes a held-open start tag with children.
func (f *fragment) settle() {
	if f.pending {
		f.builder.WriteString(">")
		f.pending = false
	}
}

func (f *fragment) String() string {
	return f.builder.String()
}
