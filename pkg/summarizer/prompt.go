package summarizer

import (
	"fmt"
	"strings"
)

// systemPrompt instructs the model to act as a memory consolidator.
const systemPrompt = `You are a memory consolidation assistant. You will be given several related memory entries. Synthesize them into a single consolidated memory that preserves their combined meaning.

Requirements:
- Identify the common theme connecting the entries
- Merge overlapping information instead of repeating it
- Preserve specific details, examples and caveats that would be lost otherwise
- Use concise language and keep the original's technical terms
- Generate ONLY the consolidated memory text, with no preamble or headings`

// buildPrompt formats a cluster's contents, in group order, into the user
// message sent to the model.
func buildPrompt(contents []string) string {
	var b strings.Builder

	b.WriteString("## Memory Entries\n\n")
	for i, content := range contents {
		b.WriteString(fmt.Sprintf("### Entry %d\n\n", i+1))
		b.WriteString(content)
		b.WriteString("\n\n")
		if i < len(contents)-1 {
			b.WriteString("---\n\n")
		}
	}

	b.WriteString("## Task\n\n")
	b.WriteString("Consolidate the entries above into one memory.\n")

	return b.String()
}
