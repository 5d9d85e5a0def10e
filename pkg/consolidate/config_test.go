package consolidate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ResolveDefaults(t *testing.T) {
	s := Config{}.resolve()
	assert.Equal(t, DefaultDeduplicateThreshold, s.deduplicateThreshold)
	assert.Equal(t, DefaultClusterThreshold, s.clusterThreshold)
	assert.Equal(t, DefaultMinClusterSize, s.minClusterSize)
	assert.Equal(t, DefaultHotDays, s.hotDays)
	assert.Equal(t, DefaultWarmDays, s.warmDays)
	assert.Equal(t, DefaultColdDays, s.coldDays)
	assert.Equal(t, DefaultArchiveTruncateLength, s.archiveTruncateLength)
}

func TestConfig_ResolveOverrides(t *testing.T) {
	threshold := 0.5
	size := 5
	s := Config{
		DeduplicateThreshold: &threshold,
		MinClusterSize:       &size,
	}.resolve()
	assert.Equal(t, 0.5, s.deduplicateThreshold)
	assert.Equal(t, 5, s.minClusterSize)
	// Unset fields keep defaults.
	assert.Equal(t, DefaultClusterThreshold, s.clusterThreshold)
}

func TestConfig_ZeroValuesAreExplicit(t *testing.T) {
	// Zero is a deliberate setting, distinct from unset: it disables
	// archiving and degenerates clustering, but is accepted as-is.
	zero := 0
	zeroF := 0.0
	s := Config{
		ArchiveTruncateLength: &zero,
		ClusterThreshold:      &zeroF,
	}.resolve()
	assert.Equal(t, 0, s.archiveTruncateLength)
	assert.Equal(t, 0.0, s.clusterThreshold)
}

func TestConfig_NegativeValuesPassThrough(t *testing.T) {
	neg := -1.0
	s := Config{DeduplicateThreshold: &neg}.resolve()
	assert.Equal(t, -1.0, s.deduplicateThreshold)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("cluster_threshold: 0.85\nmin_cluster_size: 4\nhot_days: 3\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.ClusterThreshold)
	assert.Equal(t, 0.85, *cfg.ClusterThreshold)
	require.NotNil(t, cfg.MinClusterSize)
	assert.Equal(t, 4, *cfg.MinClusterSize)
	require.NotNil(t, cfg.HotDays)
	assert.Equal(t, 3.0, *cfg.HotDays)
	assert.Nil(t, cfg.WarmDays)
	assert.Nil(t, cfg.DeduplicateThreshold)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hot_days: 3\n"), 0o600))

	t.Setenv("MEMTIDE_HOT_DAYS", "14")
	t.Setenv("MEMTIDE_COLD_DAYS", "500")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.HotDays)
	assert.Equal(t, 14.0, *cfg.HotDays)
	require.NotNil(t, cfg.ColdDays)
	assert.Equal(t, 500.0, *cfg.ColdDays)
}

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.ClusterThreshold)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	t.Setenv("MEMTIDE_MIN_CLUSTER_SIZE", "2")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg.MinClusterSize)
	assert.Equal(t, 2, *cfg.MinClusterSize)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cluster_threshold: [unclosed"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
