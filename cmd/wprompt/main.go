package main

import (
	"fmt"
	"os"

	"whisper-prompting/cmd/wprompt/cmd"
	"whisper-prompting/internal/config"
)

func main() {
	// Initialize configuration (non-blocking - only warns about missing keys)
	_, err := config.InitializeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Set OPENAI_API_KEY in the environment or a .env file to enable transcription\n")
		// Continue execution - commands that need a key fail on their own
	}

	cmd.Execute()
}
