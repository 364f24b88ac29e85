package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService lands uploaded audio on local disk, where the transcriber
// reads it from. Implementations may additionally archive a copy elsewhere.
type StorageService interface {
	// SaveUpload persists the uploaded file and returns its local path.
	SaveUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

// LocalStorageService writes uploads into a directory.
type LocalStorageService struct {
	dir string
}

func NewLocalStorageService(dir string) (*LocalStorageService, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorageService{dir: dir}, nil
}

func (s *LocalStorageService) SaveUpload(_ context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	name := sanitizeFilename(header.Filename)
	target := filepath.Join(s.dir, fmt.Sprintf("%s_%s", uuid.New().String()[:8], name))

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create upload target failed: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write upload failed: %w", err)
	}
	return target, nil
}

// MinioStorageService keeps the local landing behavior and archives a copy
// to a MinIO bucket.
type MinioStorageService struct {
	local  *LocalStorageService
	client *minio.Client
	bucket string
}

// NewMinioStorageService builds the MinIO-backed storage from environment
// configuration (MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY,
// MINIO_BUCKET, MINIO_USE_SSL).
func NewMinioStorageService(local *LocalStorageService) (*MinioStorageService, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT not configured")
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "minioadmin"
	}
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if secretKey == "" {
		secretKey = "minioadmin"
	}
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "wprompt-audio"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioStorageService{local: local, client: client, bucket: bucket}, nil
}

func (s *MinioStorageService) SaveUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	localPath, err := s.local.SaveUpload(ctx, file, header)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("uploads/%s/%s", time.Now().UTC().Format("2006-01-02"), filepath.Base(localPath))
	_, err = s.client.FPutObject(ctx, s.bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", fmt.Errorf("archive upload to bucket %s failed: %w", s.bucket, err)
	}

	return localPath, nil
}

// NewStorageFromEnv picks the MinIO-backed storage when MINIO_ENDPOINT is
// set, plain local storage otherwise.
func NewStorageFromEnv(uploadDir string) (StorageService, error) {
	local, err := NewLocalStorageService(uploadDir)
	if err != nil {
		return nil, err
	}
	if os.Getenv("MINIO_ENDPOINT") == "" {
		return local, nil
	}
	return NewMinioStorageService(local)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload.wav"
	}
	return name
}
