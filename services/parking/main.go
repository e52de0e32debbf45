// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/AleutianAI/AleutianPark/pkg/logging"
	"github.com/AleutianAI/AleutianPark/services/parking/config"
	"github.com/AleutianAI/AleutianPark/services/parking/core"
	"github.com/AleutianAI/AleutianPark/services/parking/middleware"
	"github.com/AleutianAI/AleutianPark/services/parking/routes"
)

// initTracer configures OTLP trace export when OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Without it, spans stay on the default no-op provider.
func initTracer(ctx context.Context) (func(context.Context), error) {
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, trace export disabled")
		return func(context.Context) {}, nil
	}

	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("parking-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	port := os.Getenv("PARKING_PORT")
	if port == "" {
		port = "12250"
	}

	logger := logging.New(logging.Config{
		Level:   logging.LevelInfo,
		LogDir:  os.Getenv("PARKING_LOG_DIR"),
		Service: "parking",
		JSON:    true,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanup, err := initTracer(ctx)
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	cfg, err := config.Load(os.Getenv("PARKING_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	cityName := os.Getenv("PARKING_CITY_NAME")
	if cityName == "" {
		cityName = "AleutianPark"
	}
	system, err := core.NewSystemFromConfig(cityName, cfg, logger.Slog())
	if err != nil {
		log.Fatalf("failed to seed parking topology: %v", err)
	}
	slog.Info("parking system seeded", "city", cityName, "zones", len(cfg.Zones))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("parking-service"))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger.Slog()))

	routes.SetupRoutes(router, system)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("parking service listening", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("parking service exited: %v", err)
	}
}
