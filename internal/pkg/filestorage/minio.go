package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// MinioStorage stores files in an S3-compatible object store.
type MinioStorage struct {
	client *minio.Client
	bucket string
	region string
	useSSL bool

	ensureMu      sync.Mutex
	bucketEnsured bool
}

// MinioConfig holds connection settings for the object store
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// NewMinioStorage creates a MinioStorage. The bucket is created lazily on
// first use so a slow-starting MinIO does not block service startup.
func NewMinioStorage(cfg MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.Bucket).
		Bool("ssl", cfg.UseSSL).
		Msg("MinIO storage configured")

	return &MinioStorage{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		useSSL: cfg.UseSSL,
	}, nil
}

func (ms *MinioStorage) ensureBucket(ctx context.Context) error {
	ms.ensureMu.Lock()
	defer ms.ensureMu.Unlock()
	if ms.bucketEnsured {
		return nil
	}

	exists, err := ms.client.BucketExists(ctx, ms.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := ms.client.MakeBucket(ctx, ms.bucket, minio.MakeBucketOptions{Region: ms.region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", ms.bucket, err)
		}
		logger.Info().Str("bucket", ms.bucket).Msg("Created bucket")
	}

	ms.bucketEnsured = true
	return nil
}

// Save uploads the file to the bucket and returns its public URL.
func (ms *MinioStorage) Save(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	if err := ms.ensureBucket(ctx); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectName := uuid.New().String() + ext
	if subPath != "" {
		objectName = subPath + "/" + objectName
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = ms.client.PutObject(ctx, ms.bucket, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	scheme := "http"
	if ms.useSSL {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, ms.client.EndpointURL().Host, ms.bucket, objectName)

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("object", objectName).
		Msg("File uploaded to MinIO")
	return url, nil
}

// Delete removes the object referenced by the URL.
func (ms *MinioStorage) Delete(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	marker := "/" + ms.bucket + "/"
	idx := strings.Index(fileURL, marker)
	if idx < 0 {
		return fmt.Errorf("url %q does not reference bucket %s", fileURL, ms.bucket)
	}
	objectName := fileURL[idx+len(marker):]

	if err := ms.client.RemoveObject(ctx, ms.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}

	logger.Info().Str("object", objectName).Msg("File deleted from MinIO")
	return nil
}
