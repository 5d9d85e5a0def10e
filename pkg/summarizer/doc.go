// Package summarizer provides production implementations of the
// consolidate.Summarizer interface.
//
// Two backends are included: a direct Anthropic Messages API client and an
// adapter for any langchaingo model. Both build the same consolidation
// prompt and return the model's output verbatim; result validation (length,
// non-emptiness) is the pipeline's job.
package summarizer
