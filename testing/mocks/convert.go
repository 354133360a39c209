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

type Decompressor struct {
	GunzipFunc func(src string, dst string) error
}

func BaselineDecompressor(t *testing.T) *Decompressor {
	t.Helper()

	d := Decompressor{
		GunzipFunc: func(string, string) error {
			return nil
		},
	}

	return &d
}

func (d *Decompressor) Gunzip(src string, dst string) error {
	return d.GunzipFunc(src, dst)
}

type Converter struct {
	PBFToXMLFunc func(ctx context.Context, src string, dst string) error
}

func BaselineConverter(t *testing.T) *Converter {
	t.Helper()

	c := Converter{
		PBFToXMLFunc: func(context.Context, string, string) error {
			return nil
		},
	}

	return &c
}

func (c *Converter) PBFToXML(ctx context.Context, src string, dst string) error {
	return c.PBFToXMLFunc(ctx, src, dst)
}
