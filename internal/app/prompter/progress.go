package prompter

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"whisper-prompting/internal/app/model"
	"whisper-prompting/internal/app/util/files"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " done ",
			),
		),
	)

	return &ProgressBar{bar: bar, enabled: true}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}

// BatchPrompter adds progress-reporting batch transcription on top of the
// sequential Prompter.
type BatchPrompter struct {
	*Prompter
	progressManager *ProgressManager
}

func NewBatchPrompter(p *Prompter, config ProgressConfig) *BatchPrompter {
	return &BatchPrompter{
		Prompter:        p,
		progressManager: NewProgressManager(config),
	}
}

func (bp *BatchPrompter) Close() error {
	if bp.progressManager != nil {
		bp.progressManager.Shutdown()
	}
	return bp.Prompter.Close()
}

// TranscribeDir transcribes every unprocessed audio file in inputDir with
// the same prompt spec, at most limit files, with parallel in-flight files.
// The generate-then-transcribe pair for any single file stays sequential;
// parallelism is only across files.
func (bp *BatchPrompter) TranscribeDir(ctx context.Context, inputDir string, spec model.PromptSpec, limit, parallel int) error {
	fileInfos, err := files.GetAllAudioFiles(inputDir)
	if err != nil {
		return err
	}

	toProcess := bp.filterUnprocessed(fileInfos, limit)
	if len(toProcess) == 0 {
		bp.logger.Info("no unprocessed audio files found", zap.String("dir", inputDir))
		return nil
	}

	if parallel < 1 {
		parallel = 1
	}

	progressBar := bp.progressManager.CreateBar(len(toProcess), "Transcribing")
	defer bp.progressManager.Wait()

	var wg sync.WaitGroup
	sem := make(chan bool, parallel)

	for _, file := range toProcess {
		wg.Add(1)
		go func(file model.FileInfo) {
			defer wg.Done()
			defer progressBar.Increment()

			sem <- true
			_, err := bp.Transcribe(ctx, file.FullPath, spec)
			<-sem

			if err != nil {
				bp.logger.Error("batch transcription failed", zap.String("file", file.Name), zap.Error(err))
			}
		}(file)
	}
	wg.Wait()
	return nil
}

func (bp *BatchPrompter) filterUnprocessed(fileInfos []model.FileInfo, limit int) []model.FileInfo {
	if limit <= 0 {
		limit = len(fileInfos)
	}

	toProcess := make([]model.FileInfo, 0, limit)
	for _, fileInfo := range fileInfos {
		if id, done := bp.AlreadyProcessed(fileInfo.Name); done {
			bp.logger.Info("file already processed, skipping",
				zap.String("file", fileInfo.Name), zap.Int("id", id))
			continue
		}

		toProcess = append(toProcess, fileInfo)
		if len(toProcess) >= limit {
			break
		}
	}
	return toProcess
}
