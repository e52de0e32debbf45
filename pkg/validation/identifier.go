// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for caller-supplied
// identifiers. Zone, area, vehicle, and request ids appear in URL paths,
// log lines, and generated slot names; validating them up front keeps
// malformed or hostile strings out of all three.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern matches service identifiers: a leading alphanumeric, then
// letters, digits, underscores, dots, or hyphens. Max 64 characters.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.\-]{0,63}$`)

// ValidateID checks one identifier. The label names the field in the
// error message.
//
// Example:
//
//	if err := validation.ValidateID("zone_id", req.ZoneID); err != nil {
//	    return err
//	}
func ValidateID(label, id string) error {
	if id == "" {
		return fmt.Errorf("%s cannot be empty", label)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid %s: %q (must be 1-64 alphanumeric, underscore, dot, or hyphen characters and start alphanumeric)", label, id)
	}
	return nil
}

// ValidateIDs checks a batch, reporting every invalid entry at once.
func ValidateIDs(label string, ids []string) error {
	var invalid []string
	for _, id := range ids {
		if err := ValidateID(label, id); err != nil {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid %s values: %s", label, strings.Join(invalid, ", "))
	}
	return nil
}
