package prompter

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"whisper-prompting/internal/app/model"
)

// ComparisonResult pairs one prompt spec with the transcript it produced.
type ComparisonResult struct {
	Label      string
	Prompt     string
	Transcript string
	Err        error
}

// Compare transcribes the same audio file once per spec, strictly in order,
// so the effect of each prompt can be inspected side by side. An empty-spec
// baseline is usually the first entry. Individual call failures are captured
// in the result instead of aborting the remaining runs.
func (p *Prompter) Compare(ctx context.Context, filePath string, specs []model.PromptSpec) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(specs))
	for _, spec := range specs {
		record, err := p.Transcribe(ctx, filePath, spec)
		results = append(results, ComparisonResult{
			Label:      labelFor(spec),
			Prompt:     record.Prompt,
			Transcript: record.Transcript,
			Err:        err,
		})
	}
	return results
}

// RenderComparison formats comparison results for terminal output.
func RenderComparison(results []ComparisonResult) string {
	sections := lo.Map(results, func(r ComparisonResult, _ int) string {
		var b strings.Builder
		fmt.Fprintf(&b, "--- %s ---\n", r.Label)
		if r.Prompt != "" {
			fmt.Fprintf(&b, "prompt: %s\n", r.Prompt)
		}
		if r.Err != nil {
			fmt.Fprintf(&b, "error: %v\n", r.Err)
		} else {
			b.WriteString(r.Transcript)
			b.WriteString("\n")
		}
		return b.String()
	})
	return strings.Join(sections, "\n")
}

func labelFor(spec model.PromptSpec) string {
	switch spec.Source {
	case model.PromptSourceNone, "":
		return "baseline (no prompt)"
	case model.PromptSourceLiteral:
		return "literal prompt"
	case model.PromptSourcePreset:
		return fmt.Sprintf("preset %q", spec.Preset)
	case model.PromptSourceGenerated:
		return fmt.Sprintf("generated from %q", spec.Instruction)
	default:
		return string(spec.Source)
	}
}
