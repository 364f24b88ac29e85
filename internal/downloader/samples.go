package downloader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"whisper-prompting/internal/app/utils"
)

// Sample is one of the fixed demo recordings the workflows are demonstrated
// against.
type Sample struct {
	Name string
	URL  string
}

// Samples are the pre-published demo assets, fetched via plain GET. The up
// first clip is a podcast intro; the other two exercise spelling steering.
var Samples = []Sample{
	{Name: "upfirstpodcastchunkthree.wav", URL: "https://cdn.openai.com/API/examples/data/upfirstpodcastchunkthree.wav"},
	{Name: "bbq_plans.wav", URL: "https://cdn.openai.com/API/examples/data/bbq_plans.wav"},
	{Name: "product_names.wav", URL: "https://cdn.openai.com/API/examples/data/product_names.wav"},
}

// Downloader fetches sample audio into a local directory.
type Downloader struct {
	client *http.Client
	logger *zap.Logger
}

func New(client *http.Client, logger *zap.Logger) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Downloader{client: client, logger: logger}
}

// DownloadAll fetches every sample into dir, skipping files that already
// exist with the expected size.
func (d *Downloader) DownloadAll(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	for _, sample := range Samples {
		if err := d.Download(sample, dir); err != nil {
			return fmt.Errorf("download %s failed: %w", sample.Name, err)
		}
	}
	return nil
}

// Download fetches one sample into dir.
func (d *Downloader) Download(sample Sample, dir string) error {
	target := filepath.Join(dir, sample.Name)

	remoteSize, err := d.remoteSize(sample.URL)
	if err == nil && remoteSize > 0 {
		if info, statErr := os.Stat(target); statErr == nil && info.Size() == remoteSize {
			d.logger.Info("sample already present, skipping",
				zap.String("file", sample.Name), zap.Int64("size", remoteSize))
			return nil
		}
	}

	d.logger.Info("downloading sample", zap.String("file", sample.Name), zap.String("url", sample.URL))

	resp, err := d.client.Get(sample.URL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s for %s", resp.Status, sample.URL)
	}

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write %s failed: %w", target, err)
	}

	if hash, hashErr := utils.FileSHA256(target); hashErr == nil {
		d.logger.Info("sample downloaded",
			zap.String("file", sample.Name), zap.String("sha256", hash))
	}
	return nil
}

// remoteSize asks for the content length via HEAD. Zero with no error means
// the server did not advertise a length.
func (d *Downloader) remoteSize(url string) (int64, error) {
	resp, err := d.client.Head(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	lengthHeader := resp.Header.Get("Content-Length")
	if lengthHeader == "" {
		return 0, nil
	}
	return strconv.ParseInt(lengthHeader, 10, 64)
}
