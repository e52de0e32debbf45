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
	vehicleZone string // Preferred zone for registration
	vehicleType string // Vehicle type label
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Manage registered vehicles",
}

var vehicleRegisterCmd = &cobra.Command{
	Use:   "register <vehicle-id>",
	Short: "Register a vehicle with a preferred zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodPost, "/v1/vehicles", map[string]any{
			"vehicle_id":     args[0],
			"preferred_zone": vehicleZone,
			"vehicle_type":   vehicleType,
		})
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var vehicleShowCmd = &cobra.Command{
	Use:   "show <vehicle-id>",
	Short: "Show one vehicle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/vehicles/"+args[0], nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var vehicleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered vehicles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/vehicles", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

func init() {
	vehicleRegisterCmd.Flags().StringVar(&vehicleZone, "zone", "", "Preferred zone id (required)")
	vehicleRegisterCmd.Flags().StringVar(&vehicleType, "type", "Car", "Vehicle type")
	_ = vehicleRegisterCmd.MarkFlagRequired("zone")

	vehicleCmd.AddCommand(vehicleRegisterCmd, vehicleShowCmd, vehicleListCmd)
	rootCmd.AddCommand(vehicleCmd)
}
