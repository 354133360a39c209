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
	"fmt"

	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
)

// Default download source. Both are configurable on the server binary.
const (
	DefaultHost   = "https://download.geofabrik.de"
	DefaultRegion = "asia/bangladesh"
)

// URLs builds the remote URLs of source artifacts for a Geofabrik-style
// download server.
type URLs struct {
	host   string
	region string
}

// NewURLs creates a URL builder for the given download host and region path.
func NewURLs(host string, region string) URLs {
	if host == "" {
		host = DefaultHost
	}
	if region == "" {
		region = DefaultRegion
	}

	return URLs{
		host:   host,
		region: region,
	}
}

// Archive returns the URL of the source artifact for the given import: the
// dated PBF extract for a full import, the numbered gzipped change file for a
// delta import.
func (u URLs) Archive(imp osm.Import) string {
	if imp.Type() == osm.TypeDelta {
		return fmt.Sprintf("%s/%s-updates/%s.osc.gz", u.host, u.region, imp.RemoteScope())
	}
	return fmt.Sprintf("%s/%s-%s.osm.pbf", u.host, u.region, imp.RemoteScope())
}
