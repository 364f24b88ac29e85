package download

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"whisper-prompting/internal/app/util/files"
	"whisper-prompting/internal/downloader"
)

var outputDir string

func init() {
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "",
		"directory to place the sample files, default: <project>/data/samples")
}

// Cmd represents the download command
var Cmd = &cobra.Command{
	Use:   "download",
	Short: "Download the published demo audio samples",
	Long: `Download the published demo audio samples

- Fetches the podcast intro and the two spelling-steering clips
- Files already present with the expected size are skipped`,
	Run: func(cmd *cobra.Command, args []string) {
		if outputDir == "" {
			projectRoot, err := files.GetProjectRoot()
			if err != nil {
				log.Fatalf("Failed to get project root: %v\n", err)
			}
			outputDir = filepath.Join(projectRoot, "data/samples")
		}

		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v\n", err)
		}
		defer logger.Sync()

		d := downloader.New(nil, logger)
		if err := d.DownloadAll(outputDir); err != nil {
			log.Fatalf("download failed: %v\n", err)
		}

		fmt.Printf("samples downloaded to: %v\n", outputDir)
	},
}
