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
	"net/http"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system-wide counters and per-zone availability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/system/status", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List every zone with availability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/zones", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var zoneCmd = &cobra.Command{
	Use:   "zone <zone-id>",
	Short: "Show one zone with its areas and slots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/zones/"+args[0], nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <zone-id>",
	Short: "Show where a request for this zone would land right now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/zones/"+args[0]+"/suggestion", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show the trip-history report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/analytics", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all vehicles, requests, and history (topology stays)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodPost, "/v1/system/reset", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, zonesCmd, zoneCmd, suggestCmd, analyticsCmd, resetCmd)
}
