package consolidate

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Defaults applied to unset Config fields.
const (
	DefaultDeduplicateThreshold  = 0.92
	DefaultClusterThreshold      = 0.78
	DefaultMinClusterSize        = 3
	DefaultHotDays               = 7.0
	DefaultWarmDays              = 30.0
	DefaultColdDays              = 365.0
	DefaultArchiveTruncateLength = 200
)

// envPrefix namespaces the environment variables read by LoadConfig.
const envPrefix = "MEMTIDE_"

// Config tunes a consolidation run. Every field is optional: nil fields
// fall back to the documented default. Values are not range-checked;
// out-of-domain values (negative thresholds, zero cluster size) are
// accepted and produce degenerate but defined behavior.
type Config struct {
	// DeduplicateThreshold is the embedding similarity above which two
	// records count as duplicates. Default 0.92.
	DeduplicateThreshold *float64 `koanf:"deduplicate_threshold" json:"deduplicate_threshold,omitempty"`

	// ClusterThreshold is the minimum similarity to a cluster seed for
	// membership. Default 0.78.
	ClusterThreshold *float64 `koanf:"cluster_threshold" json:"cluster_threshold,omitempty"`

	// MinClusterSize is the smallest group worth merging. Default 3.
	MinClusterSize *int `koanf:"min_cluster_size" json:"min_cluster_size,omitempty"`

	// HotDays, WarmDays and ColdDays are the effective-age thresholds (in
	// days) past which a record leaves the hot, warm and cold tiers.
	// Defaults 7, 30 and 365.
	HotDays  *float64 `koanf:"hot_days" json:"hot_days,omitempty"`
	WarmDays *float64 `koanf:"warm_days" json:"warm_days,omitempty"`
	ColdDays *float64 `koanf:"cold_days" json:"cold_days,omitempty"`

	// ArchiveTruncateLength is the content length (in characters) past
	// which archive-tier records are truncated. Zero or negative disables
	// the archive phase. Default 200.
	ArchiveTruncateLength *int `koanf:"archive_truncate_length" json:"archive_truncate_length,omitempty"`
}

// settings is a Config with every default applied.
type settings struct {
	deduplicateThreshold  float64
	clusterThreshold      float64
	minClusterSize        int
	hotDays               float64
	warmDays              float64
	coldDays              float64
	archiveTruncateLength int
}

// resolve fills unset fields with their defaults.
func (c Config) resolve() settings {
	s := settings{
		deduplicateThreshold:  DefaultDeduplicateThreshold,
		clusterThreshold:      DefaultClusterThreshold,
		minClusterSize:        DefaultMinClusterSize,
		hotDays:               DefaultHotDays,
		warmDays:              DefaultWarmDays,
		coldDays:              DefaultColdDays,
		archiveTruncateLength: DefaultArchiveTruncateLength,
	}
	if c.DeduplicateThreshold != nil {
		s.deduplicateThreshold = *c.DeduplicateThreshold
	}
	if c.ClusterThreshold != nil {
		s.clusterThreshold = *c.ClusterThreshold
	}
	if c.MinClusterSize != nil {
		s.minClusterSize = *c.MinClusterSize
	}
	if c.HotDays != nil {
		s.hotDays = *c.HotDays
	}
	if c.WarmDays != nil {
		s.warmDays = *c.WarmDays
	}
	if c.ColdDays != nil {
		s.coldDays = *c.ColdDays
	}
	if c.ArchiveTruncateLength != nil {
		s.archiveTruncateLength = *c.ArchiveTruncateLength
	}
	return s
}

// LoadConfig loads a Config from an optional YAML file, then overrides with
// MEMTIDE_-prefixed environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (MEMTIDE_CLUSTER_THRESHOLD, MEMTIDE_HOT_DAYS, ...)
//  2. YAML config file
//  3. Documented defaults (applied later, when the Config is resolved)
//
// A missing file is not an error; the path may be empty to load from the
// environment alone. Fields absent from both sources stay nil.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// MEMTIDE_CLUSTER_THRESHOLD -> cluster_threshold
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
