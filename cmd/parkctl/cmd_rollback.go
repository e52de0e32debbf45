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
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback <count>",
	Short: "Undo the most recent mutating operations, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil || count <= 0 {
			return fmt.Errorf("count must be a positive integer, got %q", args[0])
		}
		out, err := newClient().do(cmd.Context(), http.MethodPost, "/v1/rollback", map[string]any{
			"operations": count,
		})
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

var rollbackHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the undoable operations, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().do(cmd.Context(), http.MethodGet, "/v1/rollback/history", nil)
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	},
}

func init() {
	rollbackCmd.AddCommand(rollbackHistoryCmd)
	rootCmd.AddCommand(rollbackCmd)
}
