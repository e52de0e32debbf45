// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the parking service configuration: container sizing
// for the system aggregate and the zone/area topology to seed at startup.
//
// A default topology is embedded so the service runs with no external
// files; an operator-provided YAML file replaces it wholesale.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxConfigFileSize caps operator-provided config files at 1MB.
const MaxConfigFileSize = 1024 * 1024

//go:embed topology.yaml
var defaultTopologyYAML []byte

// configValidate is the shared validator instance for config structs.
var configValidate = validator.New()

// =============================================================================
// Types
// =============================================================================

// Config is the root configuration document.
type Config struct {
	System SystemConfig `yaml:"system"`
	Zones  []ZoneConfig `yaml:"zones" validate:"required,min=1,dive"`
}

// SystemConfig sizes the aggregate's fixed-capacity containers. Zero values
// fall back to the defaults applied in ApplyDefaults.
type SystemConfig struct {
	ZoneBuckets    int `yaml:"zone_buckets" validate:"gte=0"`
	VehicleBuckets int `yaml:"vehicle_buckets" validate:"gte=0"`
	RequestBuckets int `yaml:"request_buckets" validate:"gte=0"`
	QueueCapacity  int `yaml:"queue_capacity" validate:"gte=0"`
	RollbackDepth  int `yaml:"rollback_depth" validate:"gte=0"`
}

// ZoneConfig declares one zone and its parking areas. Adjacency is
// one-sided: an entry here adds an edge from this zone only.
type ZoneConfig struct {
	ID            string       `yaml:"id" validate:"required"`
	Name          string       `yaml:"name" validate:"required"`
	AdjacentZones []string     `yaml:"adjacent_zones"`
	Areas         []AreaConfig `yaml:"areas" validate:"dive"`
}

// AreaConfig declares one parking area and how many slots to provision.
type AreaConfig struct {
	ID    string `yaml:"id" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Slots int    `yaml:"slots" validate:"gt=0"`
}

// =============================================================================
// Loading
// =============================================================================

// Load returns the configuration from path, or the embedded default
// topology when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return parse(defaultTopologyYAML)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > MaxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, MaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return parse(data)
}

// Default returns the embedded topology. Panics only if the embedded
// document is itself invalid, which is a build defect.
func Default() *Config {
	cfg, err := parse(defaultTopologyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded topology invalid: %v", err))
	}
	return cfg
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := configValidate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if err := cfg.checkUnique(); err != nil {
		return nil, err
	}
	cfg.System.ApplyDefaults()
	return &cfg, nil
}

// checkUnique rejects duplicate zone and area ids across the document.
func (c *Config) checkUnique() error {
	zoneIDs := make(map[string]struct{}, len(c.Zones))
	areaIDs := make(map[string]struct{})
	for _, z := range c.Zones {
		if _, dup := zoneIDs[z.ID]; dup {
			return fmt.Errorf("duplicate zone id %q", z.ID)
		}
		zoneIDs[z.ID] = struct{}{}
		for _, a := range z.Areas {
			if _, dup := areaIDs[a.ID]; dup {
				return fmt.Errorf("duplicate area id %q", a.ID)
			}
			areaIDs[a.ID] = struct{}{}
		}
	}
	return nil
}

// ApplyDefaults replaces zero sizing values with the standard defaults.
func (s *SystemConfig) ApplyDefaults() {
	if s.ZoneBuckets <= 0 {
		s.ZoneBuckets = 100
	}
	if s.VehicleBuckets <= 0 {
		s.VehicleBuckets = 500
	}
	if s.RequestBuckets <= 0 {
		s.RequestBuckets = 1000
	}
	if s.QueueCapacity <= 0 {
		s.QueueCapacity = 100
	}
	if s.RollbackDepth <= 0 {
		s.RollbackDepth = 100
	}
}
