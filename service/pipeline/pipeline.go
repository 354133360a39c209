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

package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
	"github.com/ryanhossain9797/osm-batching-tool/service/metrics"
)

// DefaultConcurrency bounds how many preparations may run at once.
const DefaultConcurrency = 2

// Fetcher downloads a remote artifact to a local path, skipping the download
// when the destination already exists.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dest string) error
}

// Decompressor expands a gzip archive to a sibling path, idempotently.
type Decompressor interface {
	Gunzip(src string, dst string) error
}

// Converter transforms a PBF file into an XML document.
type Converter interface {
	PBFToXML(ctx context.Context, src string, dst string) error
}

// Builder batches the source document of an import into per-kind batch files.
type Builder interface {
	Run(imp osm.Import) error
}

// Pipeline coordinates the preparation of an import: download, decompress or
// convert, then batch, all under a file-based lock that keeps preparation to
// a single run per import within this process.
type Pipeline struct {
	log     zerolog.Logger
	layout  osm.Layout
	urls    URLs
	fetch   Fetcher
	gunzip  Decompressor
	convert Converter
	build   Builder
	sema    *semaphore.Weighted
}

// New creates a pipeline wired to the given stages.
func New(log zerolog.Logger, layout osm.Layout, urls URLs, fetch Fetcher, gunzip Decompressor, convert Converter, build Builder, options ...func(*Config)) *Pipeline {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	p := Pipeline{
		log:     log.With().Str("component", "pipeline").Logger(),
		layout:  layout,
		urls:    urls,
		fetch:   fetch,
		gunzip:  gunzip,
		convert: convert,
		build:   build,
		sema:    semaphore.NewWeighted(int64(cfg.Concurrency)),
	}

	return &p
}

// MaybeStart launches preparation of the given import in the background,
// unless its lock file signals that a preparation is already underway. The
// call returns immediately; the background run's lifetime is decoupled from
// whatever request triggered it, and its failures surface only in the logs.
func (p *Pipeline) MaybeStart(imp osm.Import) {

	_, err := os.Stat(p.layout.LockFile(imp))
	if err == nil {
		p.log.Debug().Str("scope", imp.Scope()).Msg("lock file present, preparation already in progress")
		return
	}

	log := p.log.With().Str("type", string(imp.Type())).Str("scope", imp.Scope()).Logger()
	log.Info().Msg("starting background preparation")

	go func() {
		// The semaphore only bounds resource use; admission order between
		// imports is not specified.
		_ = p.sema.Acquire(context.Background(), 1)
		defer p.sema.Release(1)

		metrics.PreparationsInflight.Inc()
		defer metrics.PreparationsInflight.Dec()

		err := p.Prepare(context.Background(), imp)
		if err != nil {
			metrics.Preparations.WithLabelValues("failure").Inc()
			log.Error().Err(err).Msg("background preparation failed")
			return
		}

		metrics.Preparations.WithLabelValues("success").Inc()
		log.Info().Msg("background preparation completed")
	}()
}

// Prepare runs the full preparation of one import: it creates the import
// directory, takes the lock, dispatches on the import type and releases the
// lock when done. The first stage failure is returned; lock release failures
// are logged only.
func (p *Pipeline) Prepare(ctx context.Context, imp osm.Import) error {

	err := os.MkdirAll(p.layout.ImportDir(imp), 0755)
	if err != nil {
		return fmt.Errorf("could not create import directory: %w", err)
	}

	lock := p.layout.LockFile(imp)
	release, err := p.acquireLock(lock)
	if err != nil {
		return err
	}
	defer release()

	if imp.Type() == osm.TypeDelta {
		err = p.prepareDelta(ctx, imp)
	} else {
		err = p.prepareFull(ctx, imp)
	}
	if err != nil {
		return err
	}

	return nil
}

// acquireLock creates the lock file exclusively, so two racing preparations
// of the same import cannot both proceed. The lock is advisory: a crash
// leaves it behind, suppressing preparation until an operator removes it.
func (p *Pipeline) acquireLock(lock string) (func(), error) {

	file, err := os.OpenFile(lock, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not acquire lock file: %w", err)
	}
	_, err = fmt.Fprintf(file, "locked by pid %d\n", os.Getpid())
	if err != nil {
		p.log.Warn().Err(err).Str("lock", lock).Msg("could not write lock file content")
	}
	_ = file.Close()

	release := func() {
		err := os.Remove(lock)
		if err != nil {
			p.log.Warn().Err(err).Str("lock", lock).Msg("could not remove lock file")
		}
	}

	return release, nil
}

// prepareFull downloads the dated PBF extract, converts it to XML unless the
// document is already there, and batches it.
func (p *Pipeline) prepareFull(ctx context.Context, imp osm.Import) error {

	archive := p.layout.SourceArchive(imp)
	source := p.layout.SourceXML(imp)

	_, statErr := os.Stat(archive)
	err := p.fetch.Fetch(ctx, p.urls.Archive(imp), archive)
	if err != nil {
		return fmt.Errorf("could not download PBF archive: %w", err)
	}
	if statErr != nil {
		metrics.Downloads.Inc()
	}

	_, err = os.Stat(source)
	if err != nil {
		err = p.convert.PBFToXML(ctx, archive, source)
		if err != nil {
			return fmt.Errorf("could not convert archive: %w", err)
		}
	}

	err = p.build.Run(imp)
	if err != nil {
		return fmt.Errorf("could not batch source document: %w", err)
	}

	return nil
}

// prepareDelta downloads the gzipped change file, decompresses it and
// batches it.
func (p *Pipeline) prepareDelta(ctx context.Context, imp osm.Import) error {

	archive := p.layout.SourceArchive(imp)
	source := p.layout.SourceXML(imp)

	_, statErr := os.Stat(archive)
	err := p.fetch.Fetch(ctx, p.urls.Archive(imp), archive)
	if err != nil {
		return fmt.Errorf("could not download change archive: %w", err)
	}
	if statErr != nil {
		metrics.Downloads.Inc()
	}

	err = p.gunzip.Gunzip(archive, source)
	if err != nil {
		return fmt.Errorf("could not decompress archive: %w", err)
	}

	err = p.build.Run(imp)
	if err != nil {
		return fmt.Errorf("could not batch source document: %w", err)
	}

	return nil
}
