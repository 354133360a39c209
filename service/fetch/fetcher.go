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

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// progressInterval is how often the fetcher logs streaming progress.
const progressInterval = 5 * time.Second

// Fetcher downloads remote artifacts into the local filesystem. A destination
// that already exists is treated as a completed download and skipped; the
// downstream pipeline stages re-validate what they consume.
type Fetcher struct {
	log    zerolog.Logger
	client *http.Client
}

// NewFetcher creates a fetcher that downloads with the given HTTP client. A
// nil client falls back to the default client.
func NewFetcher(log zerolog.Logger, client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	f := Fetcher{
		log:    log.With().Str("component", "fetcher").Logger(),
		client: client,
	}

	return &f
}

// Fetch makes dest exist with the payload served at url. Parent directories
// are created as needed. The write is streamed and not atomic.
func (f *Fetcher) Fetch(ctx context.Context, url string, dest string) error {

	_, err := os.Stat(dest)
	if err == nil {
		f.log.Debug().Str("dest", dest).Msg("destination already exists, skipping download")
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("could not stat destination: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(dest), 0755)
	if err != nil {
		return fmt.Errorf("could not create destination directory: %w", err)
	}

	f.log.Info().Str("url", url).Str("dest", dest).Msg("starting download")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not execute request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("Download failed with status: %d", res.StatusCode)
	}

	if res.ContentLength >= 0 {
		f.log.Info().Int64("size_bytes", res.ContentLength).Msg("download size known")
	}

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	counter := progressWriter{
		log:   f.log,
		total: res.ContentLength,
		last:  time.Now(),
	}

	written, err := io.Copy(file, io.TeeReader(res.Body, &counter))
	if err != nil {
		return fmt.Errorf("could not download file: %w", err)
	}

	f.log.Info().Str("dest", dest).Int64("written_bytes", written).Msg("download completed")

	return nil
}

// progressWriter logs download progress at a fixed interval as the response
// body streams through it.
type progressWriter struct {
	log     zerolog.Logger
	total   int64
	written int64
	last    time.Time
}

func (p *progressWriter) Write(data []byte) (int, error) {
	p.written += int64(len(data))
	if time.Since(p.last) >= progressInterval {
		p.last = time.Now()
		ev := p.log.Info().Int64("written_bytes", p.written)
		if p.total > 0 {
			ev = ev.Int64("total_bytes", p.total)
		}
		ev.Msg("download progress")
	}
	return len(data), nil
}
