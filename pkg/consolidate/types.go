package consolidate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors for record construction.
var (
	ErrEmptyContent = errors.New("record content cannot be empty")
	ErrNilLogger    = errors.New("logger cannot be nil")
)

// Tier is a record's storage tier. Tiers are ordered: a record only moves
// forward through them (hot -> warm -> cold -> archive), never back.
type Tier int

const (
	// TierHot holds recently created or frequently accessed records.
	TierHot Tier = iota

	// TierWarm holds records past their hot window.
	TierWarm

	// TierCold holds records past their warm window.
	TierCold

	// TierArchive is the terminal tier. Archive records never transition
	// further and are eligible for content compaction.
	TierArchive
)

var tierNames = [...]string{"hot", "warm", "cold", "archive"}

// String returns the tier's lowercase name.
func (t Tier) String() string {
	if t < TierHot || t > TierArchive {
		return "unknown"
	}
	return tierNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	for i, name := range tierNames {
		if name == string(text) {
			*t = Tier(i)
			return nil
		}
	}
	return errors.New("unknown tier: " + string(text))
}

// next returns the tier one step forward. Archive stays archive.
func (t Tier) next() Tier {
	if t >= TierArchive {
		return TierArchive
	}
	return t + 1
}

// Record is a single memory record.
//
// Records are treated as values: no pipeline phase mutates a record in
// place. A phase either carries the value through unchanged or replaces it
// with a copy whose modified reference fields (tags, metadata) have been
// re-allocated first.
type Record struct {
	// ID is an opaque unique identifier.
	ID string `json:"id"`

	// Content is the text body.
	Content string `json:"content"`

	// Embedding is the record's fixed-length embedding vector. Generation
	// of embeddings is the host application's concern.
	Embedding []float32 `json:"embedding,omitempty"`

	// Tags are labels in insertion order, deduplicated as a set on add.
	Tags []string `json:"tags,omitempty"`

	// Importance is a score expected in [0, 1], not enforced.
	Importance float64 `json:"importance"`

	// Tier is the record's current storage tier.
	Tier Tier `json:"tier"`

	// CreatedAt is when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// LastAccessedAt is when the record was last read.
	LastAccessedAt time.Time `json:"last_accessed_at"`

	// AccessCount is the number of times the record has been read.
	AccessCount int `json:"access_count"`

	// Source optionally labels where the record came from.
	Source string `json:"source,omitempty"`

	// Metadata carries arbitrary host-defined values.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewRecord creates a hot-tier record with a generated UUID.
func NewRecord(content string, embedding []float32) (Record, error) {
	if content == "" {
		return Record{}, ErrEmptyContent
	}
	now := time.Now()
	return Record{
		ID:             uuid.New().String(),
		Content:        content,
		Embedding:      embedding,
		Tier:           TierHot,
		CreatedAt:      now,
		LastAccessedAt: now,
	}, nil
}

// Touched returns a copy of the record with its access count incremented
// and last-access time set. Hosts call this when a record is read, since
// access frequency slows decay.
func (r Record) Touched(now time.Time) Record {
	r.AccessCount++
	r.LastAccessedAt = now
	return r
}

// HasTag reports whether the record carries the given tag.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// score ranks records when one of several must be kept: deduplication keeps
// the higher-scored duplicate, merging picks the highest-scored cluster
// member as representative. Ties go to the earlier record.
func (r Record) score() float64 {
	return r.Importance + float64(r.AccessCount)*0.1
}

// withTag returns the record's tags with tag appended, or the original
// slice when the tag is already present. The returned slice is always a
// fresh allocation when it differs, so callers never mutate shared state.
func (r Record) withTag(tag string) []string {
	if r.HasTag(tag) {
		return r.Tags
	}
	tags := make([]string, len(r.Tags), len(r.Tags)+1)
	copy(tags, r.Tags)
	return append(tags, tag)
}

// withMetadata returns a copy of the record's metadata extended with the
// given entries. The original map is never written to.
func (r Record) withMetadata(extra map[string]any) map[string]any {
	meta := make(map[string]any, len(r.Metadata)+len(extra))
	for k, v := range r.Metadata {
		meta[k] = v
	}
	for k, v := range extra {
		meta[k] = v
	}
	return meta
}

// Summarizer condenses a cluster's contents into one consolidated string.
//
// Implementations may call any text-generation backend. The pipeline treats
// the result as untrusted and validates only that it is at least ten
// characters long; a failing or low-quality summarization skips the cluster
// and never aborts the run.
type Summarizer interface {
	Summarize(ctx context.Context, contents []string) (string, error)
}

// SummarizeFunc adapts a plain function to the Summarizer interface.
type SummarizeFunc func(ctx context.Context, contents []string) (string, error)

// Summarize calls f.
func (f SummarizeFunc) Summarize(ctx context.Context, contents []string) (string, error) {
	return f(ctx, contents)
}

// TierCounts is a per-tier census of a record collection.
type TierCounts struct {
	Hot     int `json:"hot"`
	Warm    int `json:"warm"`
	Cold    int `json:"cold"`
	Archive int `json:"archive"`
	Total   int `json:"total"`
}

// countTiers tallies records by tier.
func countTiers(records []Record) TierCounts {
	var c TierCounts
	for _, r := range records {
		switch r.Tier {
		case TierHot:
			c.Hot++
		case TierWarm:
			c.Warm++
		case TierCold:
			c.Cold++
		case TierArchive:
			c.Archive++
		}
	}
	c.Total = len(records)
	return c
}

// Report describes one consolidation run.
type Report struct {
	// Timestamp is when the run completed.
	Timestamp time.Time `json:"timestamp"`

	// Duration is the elapsed wall-clock time of the run.
	Duration time.Duration `json:"duration"`

	// Before counts the caller's input records by tier.
	Before TierCounts `json:"before"`

	// After counts the returned records by tier.
	After TierCounts `json:"after"`

	// Decayed is the number of records whose tier advanced.
	Decayed int `json:"decayed"`

	// Deduplicated is the number of near-duplicate records removed.
	Deduplicated int `json:"deduplicated"`

	// ClustersFound is the number of mergeable groups detected.
	ClustersFound int `json:"clusters_found"`

	// Summarized is the number of records folded away by merging.
	Summarized int `json:"summarized"`

	// Archived is the number of archive records whose content was truncated.
	Archived int `json:"archived"`
}
