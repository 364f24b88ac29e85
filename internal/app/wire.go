//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/google/wire"
	"go.uber.org/zap"

	"whisper-prompting/internal/app/api"
	"whisper-prompting/internal/app/api/gemini"
	"whisper-prompting/internal/app/api/openai"
	"whisper-prompting/internal/app/api/openai/chat"
	"whisper-prompting/internal/app/api/openai/whisper"
	appconfig "whisper-prompting/internal/app/config"
	"whisper-prompting/internal/app/prompter"
	"whisper-prompting/internal/app/repository"
	"whisper-prompting/internal/app/repository/sqlite"
	"whisper-prompting/internal/app/util/files"
)

// provideTranscriber with openai's remote service, must set environment variable OPENAI_API_KEY
func provideTranscriber() api.Transcriber {
	return whisper.NewRemoteTranscriber(openai.GetClient())
}

// provideGenerator selects the fictitious prompt generator. The openai chat
// generator is the default; set WPROMPT_GENERATOR=gemini to use Gemini
// (requires GEMINI_API_KEY).
func provideGenerator() api.PromptGenerator {
	if os.Getenv("WPROMPT_GENERATOR") == "gemini" {
		generator, err := gemini.NewFictitiousGenerator(context.Background())
		if err != nil {
			log.Fatalf("Failed to initialize gemini generator: %v\n", err)
		}
		return generator
	}
	return chat.NewFictitiousGenerator(openai.GetClient())
}

func providePresets() *appconfig.PresetConfig {
	path, err := appconfig.DefaultPresetsPath()
	if err != nil {
		return appconfig.DefaultPresets()
	}
	presets, err := appconfig.LoadPresets(path)
	if err != nil {
		log.Fatalf("Failed to load presets: %v\n", err)
	}
	return presets
}

func provideTranscriptDAO() repository.TranscriptDAO {
	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	dbPath := filepath.Join(projectRoot, "data/transcripts.db")
	return sqlite.NewSQLiteDB(dbPath)
}

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	return logger
}

func InitializePrompter() *prompter.Prompter {
	wire.Build(prompter.NewPrompter, provideTranscriber, provideGenerator, providePresets, provideTranscriptDAO, provideLogger)
	return &prompter.Prompter{}
}

func InitializeBatchPrompter(config prompter.ProgressConfig) *prompter.BatchPrompter {
	wire.Build(prompter.NewPrompter, prompter.NewBatchPrompter, provideTranscriber, provideGenerator, providePresets, provideTranscriptDAO, provideLogger)
	return &prompter.BatchPrompter{}
}
