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

package osm

import "context"

// Server is a simple implementation of the generated OsmImportServer
// interface. It simply forwards requests to its controller directly without
// any extra logic. It could be used later on to specify GRPC options
// specifically for certain routes.
type Server struct {
	ctrl *Controller
}

// NewServer creates a Server given a Controller pointer.
func NewServer(ctrl *Controller) *Server {
	return &Server{
		ctrl: ctrl,
	}
}

// Ping calls the server's controller with the Ping method.
func (s *Server) Ping(ctx context.Context, req *PingRequest) (*PingResponse, error) {
	return s.ctrl.Ping(ctx, req)
}

// FetchImportBatch calls the server's controller with the FetchImportBatch method.
func (s *Server) FetchImportBatch(ctx context.Context, req *FetchImportBatchRequest) (*FetchImportBatchResponse, error) {
	return s.ctrl.FetchImportBatch(ctx, req)
}
