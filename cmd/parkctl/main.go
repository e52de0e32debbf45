// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command parkctl is the CLI client for the parking service.
//
// Usage:
//
//	parkctl status
//	parkctl zones
//	parkctl zone ZONE_A
//	parkctl suggest ZONE_A
//	parkctl vehicle register CAR-123 --zone ZONE_A --type Car
//	parkctl request create CAR-123 --zone ZONE_A --auto
//	parkctl request allocate REQ_0001
//	parkctl request occupy REQ_0001
//	parkctl request release REQ_0001
//	parkctl request cancel REQ_0001
//	parkctl queue add REQ_0002
//	parkctl queue process
//	parkctl rollback 3
//	parkctl analytics
//
// The server address defaults to http://localhost:12250 and can be
// overridden with --server or the PARKING_SERVER env var.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "parkctl",
	Short: "Control a running parking service",
	Long: `parkctl talks to the parking service HTTP API.

It covers the full request lifecycle (create, allocate, occupy, release,
cancel), zone and vehicle administration, the pending queue, rollback,
and analytics.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	defaultServer := os.Getenv("PARKING_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:12250"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer,
		"Base URL of the parking service")
}
