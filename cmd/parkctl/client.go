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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// apiClient wraps the parking service HTTP API with JSON plumbing and
// consistent error reporting.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newClient() *apiClient {
	return &apiClient{
		baseURL: serverURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do performs one request. A non-nil body is sent as JSON; the decoded
// JSON response comes back as a generic map for printing.
func (c *apiClient) do(ctx context.Context, method, path string, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parking service unreachable at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("unexpected response (%d): %s", resp.StatusCode, string(data))
		}
	}
	if resp.StatusCode >= 400 {
		if msg, ok := decoded["error"].(string); ok {
			return nil, fmt.Errorf("%s (%d)", msg, resp.StatusCode)
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return decoded, nil
}

// printJSON pretty-prints a response to stdout.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "failed to render response: %v\n", err)
	}
}
