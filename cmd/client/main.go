// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-health-wallet/internal/adapter"
	"github.com/MKhiriev/go-health-wallet/internal/client"
	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewStderrLogger("health-wallet-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "server base URL (HEALTH_WALLET_SERVER)")
	flag.StringVar(&cfg.Token, "token", cfg.Token, "bearer token (HEALTH_WALLET_TOKEN)")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout (HEALTH_WALLET_TIMEOUT)")
	logLevel := flag.String("log-level", "warn", "log level")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	if err = log.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	if err = cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid client configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, os.Stdout, os.Stderr, log)
	if err = app.Run(ctx, flag.Args()); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
