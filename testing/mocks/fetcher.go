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

package mocks

import (
	"context"
	"testing"
)

type Fetcher struct {
	FetchFunc func(ctx context.Context, url string, dest string) error
}

func BaselineFetcher(t *testing.T) *Fetcher {
	t.Helper()

	f := Fetcher{
		FetchFunc: func(context.Context, string, string) error {
			return nil
		},
	}

	return &f
}

func (f *Fetcher) Fetch(ctx context.Context, url string, dest string) error {
	return f.FetchFunc(ctx, url, dest)
}
