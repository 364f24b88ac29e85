package generate

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"whisper-prompting/internal/app"
	"whisper-prompting/internal/app/util/tokens"
)

var instruction string

func init() {
	Cmd.Flags().StringVarP(&instruction, "instruction", "i", "",
		"plain instruction describing the desired prompt, example: 'Write in all lowercase.'")

	Cmd.MarkFlagRequired("instruction")
}

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fictitious transcription prompt from an instruction",
	Long: `Generate a fictitious transcription prompt from an instruction

- The chat model writes a made-up conversational passage in the requested style
- Feed the result to 'transcribe --prompt' to steer the transcript toward that style
- Only the trailing portion of a long prompt influences the transcription`,
	Run: func(cmd *cobra.Command, args []string) {
		p := app.InitializePrompter()
		defer p.Close()

		text, err := p.GeneratePrompt(context.Background(), instruction)
		if err != nil {
			log.Fatalf("prompt generation failed: %v\n", err)
		}

		fmt.Println(text)

		if tokens.ExceedsWindow(text) {
			fmt.Fprintf(os.Stderr, "note: prompt is roughly %d tokens; only the final %d influence the transcription\n",
				tokens.Estimate(text), tokens.PromptTokenWindow)
		}
	},
}
