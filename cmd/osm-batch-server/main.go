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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"
	"google.golang.org/grpc"

	api "github.com/ryanhossain9797/osm-batching-tool/api/osm"
	"github.com/ryanhossain9797/osm-batching-tool/api/rest"
	"github.com/ryanhossain9797/osm-batching-tool/models/osm"
	"github.com/ryanhossain9797/osm-batching-tool/service/batch"
	"github.com/ryanhossain9797/osm-batching-tool/service/convert"
	"github.com/ryanhossain9797/osm-batching-tool/service/fetch"
	"github.com/ryanhossain9797/osm-batching-tool/service/metrics"
	"github.com/ryanhossain9797/osm-batching-tool/service/pipeline"
)

func main() {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagLog         string
		flagData        string
		flagPort        uint16
		flagStatus      uint16
		flagMetrics     string
		flagHost        string
		flagRegion      string
		flagProducer    string
		flagOsmium      string
		flagConcurrency uint
	)

	pflag.StringVarP(&flagLog, "log", "l", "info", "log output level")
	pflag.StringVarP(&flagData, "data", "d", "data", "root directory for import state")
	pflag.Uint16VarP(&flagPort, "port", "p", defaultPort(), "port to serve GRPC API on")
	pflag.Uint16VarP(&flagStatus, "status", "s", 8090, "port to serve status API on")
	pflag.StringVarP(&flagMetrics, "metrics", "m", ":9090", "address to serve metrics on")
	pflag.StringVar(&flagHost, "download-host", pipeline.DefaultHost, "base URL of the download server")
	pflag.StringVar(&flagRegion, "region", pipeline.DefaultRegion, "region path on the download server")
	pflag.StringVar(&flagProducer, "producer", batch.DefaultProducer, "producer token for the generator attribute")
	pflag.StringVar(&flagOsmium, "osmium", convert.DefaultOsmiumBinary, "osmium binary used for PBF conversion")
	pflag.UintVar(&flagConcurrency, "concurrency", pipeline.DefaultConcurrency, "maximum concurrent background preparations")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLog)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse log level")
	}
	log = log.Level(level)

	// Initialize the pipeline stages and the availability oracle.
	layout := osm.NewLayout(flagData)
	fetcher := fetch.NewFetcher(log, nil)
	decompressor := convert.NewDecompressor(log)
	converter := convert.NewConverter(log, flagOsmium)
	writer := batch.NewWriter(log, layout, flagProducer)
	reader := batch.NewReader(log, layout)
	urls := pipeline.NewURLs(flagHost, flagRegion)
	prepare := pipeline.New(log, layout, urls, fetcher, decompressor, converter, writer,
		pipeline.WithConcurrency(flagConcurrency))

	// GRPC API initialization.
	controller := api.NewController(log, reader, prepare)
	svr := grpc.NewServer()

	// Status API initialization.
	status := echo.New()
	status.HideBanner = true
	status.HidePort = true
	elog := lecho.From(log)
	status.Logger = elog
	status.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	statusCtrl := rest.NewController(layout)
	status.GET("/health", statusCtrl.Health)
	status.GET("/imports/:type/:scope", statusCtrl.Import)

	// Metrics server initialization.
	msvr := metrics.NewServer(log, flagMetrics)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	go func() {
		log.Info().Msg("starting GRPC API server")
		listener, err := net.Listen("tcp", fmt.Sprintf("[::]:%d", flagPort))
		if err != nil {
			log.Fatal().Err(err).Uint16("port", flagPort).Msg("could not listen")
		}
		api.RegisterOsmImportServer(svr, api.NewServer(controller))
		err = svr.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("GRPC API encountered error")
		}
		log.Info().Msg("GRPC API server stopped")
	}()
	go func() {
		log.Info().Msg("starting status API server")
		err := status.Start(fmt.Sprintf(":%d", flagStatus))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("status API encountered error")
		}
		log.Info().Msg("status API server stopped")
	}()
	go func() {
		log.Info().Msg("starting metrics server")
		err := msvr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server encountered error")
		}
		log.Info().Msg("metrics server stopped")
	}()

	log.Info().Msg("startup complete")

	<-sig

	// The following code shuts down the main executing components. The status
	// API and the metrics server get a fixed shutdown timeout and log an error
	// if they miss it; the GRPC server stops gracefully without a deadline. A
	// second interrupt forces an immediate exit. We then wait for shutdown on
	// each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	wg := &sync.WaitGroup{}
	wg.Add(3)
	go func() {
		log.Info().Msg("shutting down GRPC API")
		defer wg.Done()
		svr.GracefulStop()
		log.Info().Msg("GRPC API shutdown complete")
	}()
	go func() {
		log.Info().Msg("shutting down status API")
		defer wg.Done()
		err := status.Shutdown(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down status API")
		}
		log.Info().Msg("status API shutdown complete")
	}()
	go func() {
		log.Info().Msg("shutting down metrics server")
		defer wg.Done()
		err := msvr.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
		}
		log.Info().Msg("metrics server shutdown complete")
	}()
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	wg.Wait()

	os.Exit(0)
}

// defaultPort honors the SERVER_PORT environment variable of the original
// deployment, falling back to 8080.
func defaultPort() uint16 {
	value := os.Getenv("SERVER_PORT")
	if value == "" {
		return 8080
	}
	port, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 8080
	}
	return uint16(port)
}
