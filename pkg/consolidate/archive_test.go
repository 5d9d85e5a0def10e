package consolidate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_TruncatesOversizedContent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestConsolidator(t, now)

	long := strings.Repeat("x", 500)
	records := []Record{{ID: "a", Content: long, Tier: TierArchive}}

	out, truncated := c.archive(records)
	require.Equal(t, 1, truncated)
	assert.Equal(t, strings.Repeat("x", 200)+"...", out[0].Content)
	assert.Equal(t, true, out[0].Metadata["truncated"])
	assert.Equal(t, 500, out[0].Metadata["originalLength"])
}

func TestArchive_ShortContentUntouched(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestConsolidator(t, now)

	records := []Record{{ID: "a", Content: "short", Tier: TierArchive}}

	out, truncated := c.archive(records)
	assert.Equal(t, 0, truncated)
	assert.Equal(t, "short", out[0].Content)
	assert.Nil(t, out[0].Metadata)
}

func TestArchive_NonArchiveTiersSkipped(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestConsolidator(t, now)

	long := strings.Repeat("x", 500)
	records := []Record{
		{ID: "hot", Content: long, Tier: TierHot},
		{ID: "warm", Content: long, Tier: TierWarm},
		{ID: "cold", Content: long, Tier: TierCold},
	}

	out, truncated := c.archive(records)
	assert.Equal(t, 0, truncated)
	for _, r := range out {
		assert.Len(t, r.Content, 500)
	}
}

func TestArchive_ConsolidatedRecordsExempt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestConsolidator(t, now)

	long := strings.Repeat("x", 500)
	records := []Record{{
		ID:      "a",
		Content: long,
		Tier:    TierArchive,
		Tags:    []string{ConsolidatedTag},
	}}

	out, truncated := c.archive(records)
	assert.Equal(t, 0, truncated)
	assert.Equal(t, long, out[0].Content)
}

func TestArchive_DisabledByNonPositiveLength(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	zero := 0
	c := newTestConsolidator(t, now, WithConfig(Config{ArchiveTruncateLength: &zero}))

	records := []Record{{ID: "a", Content: strings.Repeat("x", 500), Tier: TierArchive}}

	out, truncated := c.archive(records)
	assert.Equal(t, 0, truncated)
	assert.Len(t, out[0].Content, 500)
}

func TestArchive_CountsCharactersNotBytes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limit := 3
	c := newTestConsolidator(t, now, WithConfig(Config{ArchiveTruncateLength: &limit}))

	records := []Record{{ID: "a", Content: "日本語のテキスト", Tier: TierArchive}}

	out, truncated := c.archive(records)
	require.Equal(t, 1, truncated)
	assert.Equal(t, "日本語...", out[0].Content)
	assert.Equal(t, 8, out[0].Metadata["originalLength"])
}

func TestArchive_PreservesExistingMetadata(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestConsolidator(t, now)

	records := []Record{{
		ID:       "a",
		Content:  strings.Repeat("x", 500),
		Tier:     TierArchive,
		Metadata: map[string]any{"origin": "import"},
	}}

	out, _ := c.archive(records)
	assert.Equal(t, "import", out[0].Metadata["origin"])
	assert.Equal(t, true, out[0].Metadata["truncated"])
}
