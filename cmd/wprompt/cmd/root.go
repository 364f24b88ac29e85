package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"whisper-prompting/cmd/wprompt/cmd/compare"
	"whisper-prompting/cmd/wprompt/cmd/download"
	"whisper-prompting/cmd/wprompt/cmd/export"
	"whisper-prompting/cmd/wprompt/cmd/generate"
	"whisper-prompting/cmd/wprompt/cmd/serve"
	"whisper-prompting/cmd/wprompt/cmd/transcribe"
	"whisper-prompting/cmd/wprompt/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wprompt",
	Short: "Prompted speech transcription: steer whisper output with prompts, presets or generated seed text",
	Long: `Prompted speech transcription built on the whisper API.
- Transcribe single files or whole directories, with or without a prompt
- Generate fictitious seed prompts from a plain instruction via a chat model
- Compare transcripts of the same audio under different prompts
- The processed records will be saved to sqlite.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(compare.Cmd)
	rootCmd.AddCommand(download.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
