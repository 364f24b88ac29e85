package compare

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"whisper-prompting/internal/app"
	"whisper-prompting/internal/app/model"
	"whisper-prompting/internal/app/prompter"
)

var (
	audioFile    string
	prompts      []string
	presets      []string
	instructions []string
	noBaseline   bool
)

func init() {
	Cmd.Flags().StringVarP(&audioFile, "file", "f", "", "audio file to transcribe under each prompt")
	Cmd.Flags().StringArrayVarP(&prompts, "prompt", "p", nil, "literal prompt to include in the comparison (repeatable)")
	Cmd.Flags().StringArrayVar(&presets, "preset", nil, "named preset to include in the comparison (repeatable)")
	Cmd.Flags().StringArrayVarP(&instructions, "instruction", "i", nil,
		"generator instruction to include in the comparison (repeatable)")
	Cmd.Flags().BoolVar(&noBaseline, "no-baseline", false, "skip the unprompted baseline run")

	Cmd.MarkFlagRequired("file")
}

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Transcribe the same audio under several prompts and print the transcripts side by side",
	Long: `Transcribe the same audio under several prompts and print the transcripts side by side

- An unprompted baseline runs first unless --no-baseline is set
- Each --prompt, --preset and --instruction adds one run
- Runs execute strictly in order; a failed run is reported and the rest continue`,
	Run: func(cmd *cobra.Command, args []string) {
		specs := make([]model.PromptSpec, 0, 1+len(prompts)+len(presets)+len(instructions))
		if !noBaseline {
			specs = append(specs, model.LiteralPrompt(""))
		}
		for _, p := range prompts {
			specs = append(specs, model.LiteralPrompt(p))
		}
		for _, p := range presets {
			specs = append(specs, model.PresetPrompt(p))
		}
		for _, ins := range instructions {
			specs = append(specs, model.GeneratedPrompt(ins))
		}

		p := app.InitializePrompter()
		defer p.Close()

		results := p.Compare(context.Background(), audioFile, specs)
		fmt.Println(prompter.RenderComparison(results))
	},
}
