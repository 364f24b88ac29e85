package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"whisper-prompting/internal/api/server"
	"whisper-prompting/internal/api/v1/routes"
	"whisper-prompting/internal/api/v1/services"
	"whisper-prompting/internal/app"
	appconfig "whisper-prompting/internal/app/config"
	"whisper-prompting/internal/app/util/files"
)

var (
	host      string
	port      string
	uploadDir string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "0.0.0.0", "bind address")
	Cmd.Flags().StringVar(&port, "port", "8080", "listen port")
	Cmd.Flags().StringVar(&uploadDir, "uploadDir", "",
		"directory for uploaded audio, default: <project>/data/uploads")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the prompted transcription HTTP API",
	Long: `Run the prompted transcription HTTP API

- POST /api/v1/transcriptions accepts an audio upload with prompt, preset or instruction
- POST /api/v1/prompts/generate runs the fictitious prompt generator
- GET /api/v1/presets, /api/v1/transcriptions, /api/v1/export, /healthz, /metrics`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		projectRoot, err := files.GetProjectRoot()
		if err != nil {
			log.Fatalf("Failed to get project root: %v\n", err)
		}
		if uploadDir == "" {
			uploadDir = filepath.Join(projectRoot, "data/uploads")
		}

		p := app.InitializePrompter()
		defer p.Close()
		dao := p.Store()

		storage, err := services.NewStorageFromEnv(uploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v\n", err)
		}

		presetsPath, err := appconfig.DefaultPresetsPath()
		if err != nil {
			log.Fatalf("Failed to locate presets: %v\n", err)
		}
		presets, err := appconfig.LoadPresets(presetsPath)
		if err != nil {
			log.Fatalf("Failed to load presets: %v\n", err)
		}

		container := &routes.ServiceContainer{
			TranscriptionService: services.NewTranscriptionService(p, storage, dao),
			PromptService:        services.NewPromptService(p, presets),
			ExportService:        services.NewExportService(dao),
		}

		config := server.DefaultConfig()
		config.Host = host
		config.Port = port
		if env := os.Getenv("WPROMPT_ENV"); env != "" {
			config.Environment = env
		}

		srv := server.NewServer(config, container, logger)
		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v\n", err)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server shutdown failed: %v\n", err)
		}
	},
}
