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

var (
	requestZone string // Requested zone for create
	requestAuto bool   // Allocate immediately on create
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Drive the parking request lifecycle",
}

var requestCreateCmd = &cobra.Command{
	Use:   "create <vehicle-id>",
	Short: "Open a parking request for a registered vehicle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodPost, "/v1/requests", map[string]any{
			"vehicle_id":     args[0],
			"requested_zone": requestZone,
			"auto_allocate":  requestAuto,
		})
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var requestShowCmd = &cobra.Command{
	Use:   "show <request-id>",
	Short: "Show one request with its state history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/requests/"+args[0], nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

// lifecycleCommand builds one of the allocate/occupy/release/cancel verbs;
// they differ only in path suffix and help text.
func lifecycleCommand(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <request-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newClient().do(cmd.Context(), http.MethodPost, "/v1/requests/"+args[0]+"/"+verb, nil)
			if err != nil {
				return err
			}
			printJSON(out)
			return nil
		},
	}
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage the pending-request queue",
}

var queueAddCmd = &cobra.Command{
	Use:   "add <request-id>",
	Short: "Queue a pending request for later processing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodPost, "/v1/queue", map[string]any{
			"request_id": args[0],
		})
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var queueProcessCmd = &cobra.Command{
	Use:   "process",
	Short: "Allocate the oldest pending request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodPost, "/v1/queue/process", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var queueShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the queue contents front to back",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/queue", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

func init() {
	requestCreateCmd.Flags().StringVar(&requestZone, "zone", "", "Requested zone id (required)")
	requestCreateCmd.Flags().BoolVar(&requestAuto, "auto", false, "Allocate immediately")
	_ = requestCreateCmd.MarkFlagRequired("zone")

	requestCmd.AddCommand(
		requestCreateCmd,
		requestShowCmd,
		lifecycleCommand("allocate", "Assign a slot via the tier search"),
		lifecycleCommand("occupy", "Mark the allocated slot as physically taken"),
		lifecycleCommand("release", "End the trip and free the slot"),
		lifecycleCommand("cancel", "Cancel a requested or allocated request"),
	)
	queueCmd.AddCommand(queueAddCmd, queueProcessCmd, queueShowCmd)
	rootCmd.AddCommand(requestCmd, queueCmd)
}
