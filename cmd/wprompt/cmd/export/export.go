package export

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"whisper-prompting/internal/app/prompter/export"
	"whisper-prompting/internal/app/repository/sqlite"
	"whisper-prompting/internal/app/util/files"
)

var (
	outputFilePath string
	limit          int
)

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of rows to export, 0 means all")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded transcription runs to excel",
	Long: `Export recorded transcription runs to excel

- One row per run: file, prompt source, prompt, instruction, transcript, error`,
	Run: func(cmd *cobra.Command, args []string) {
		projectRoot, err := files.GetProjectRoot()
		if err != nil {
			log.Fatalf("Failed to get project root: %v\n", err)
		}

		dbPath := filepath.Join(projectRoot, "data/transcripts.db")
		db := sqlite.NewSQLiteDB(dbPath)
		defer db.Close()

		transcripts, err := db.List(limit)
		if err != nil {
			log.Fatal(err)
		}

		if err := export.ToExcel(transcripts, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
