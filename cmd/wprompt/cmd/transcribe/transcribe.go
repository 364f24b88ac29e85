package transcribe

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"whisper-prompting/internal/app"
	"whisper-prompting/internal/app/model"
	"whisper-prompting/internal/app/prompter"
)

var (
	audioFile   string
	audioDir    string
	prompt      string
	preset      string
	instruction string
	limit       int
	parallel    int
	progress    bool
)

func init() {
	Cmd.Flags().StringVarP(&audioFile, "file", "f", "", "single audio file to transcribe")
	Cmd.Flags().StringVarP(&audioDir, "dir", "d", "", "directory of audio files to transcribe")
	Cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "literal prompt text passed to the transcription call")
	Cmd.Flags().StringVar(&preset, "preset", "", "named prompt preset from configs/presets.yaml")
	Cmd.Flags().StringVarP(&instruction, "instruction", "i", "",
		"instruction for the fictitious prompt generator; the generated text becomes the prompt")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 500, "maximum number of files to process in directory mode")
	Cmd.Flags().IntVar(&parallel, "parallel", 1, "number of files transcribed concurrently in directory mode")
	Cmd.Flags().BoolVar(&progress, "progress", false, "force progress bars even without a TTY")

	Cmd.MarkFlagsOneRequired("file", "dir")
	Cmd.MarkFlagsMutuallyExclusive("file", "dir")
	Cmd.MarkFlagsMutuallyExclusive("prompt", "preset", "instruction")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe audio with an optional steering prompt",
	Long: `Transcribe audio with an optional steering prompt

- No prompt flag gives a plain baseline transcription
- --prompt passes literal seed text, --preset looks it up by name
- --instruction first generates a fictitious prompt via the chat model,
  then transcribes with it; the two calls stay strictly in order`,
	Run: func(cmd *cobra.Command, args []string) {
		spec := promptSpec()
		ctx := context.Background()

		if audioFile != "" {
			p := app.InitializePrompter()
			defer p.Close()

			record, err := p.Transcribe(ctx, audioFile, spec)
			if err != nil {
				log.Fatalf("transcription failed: %v\n", err)
			}
			fmt.Println(record.Transcript)
			return
		}

		bp := app.InitializeBatchPrompter(prompter.ProgressConfig{
			Enabled: prompter.ShouldShowProgress(progress),
		})
		defer bp.Close()

		if err := bp.TranscribeDir(ctx, audioDir, spec, limit, parallel); err != nil {
			log.Fatalf("batch transcription failed: %v\n", err)
		}
	},
}

func promptSpec() model.PromptSpec {
	switch {
	case preset != "":
		return model.PresetPrompt(preset)
	case instruction != "":
		return model.GeneratedPrompt(instruction)
	default:
		return model.LiteralPrompt(prompt)
	}
}
