package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// LocalStorage saves files to the local filesystem and serves them via the
// static /uploads route.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // URL prefix under which basePath is served
}

// NewLocalStorage creates a LocalStorage rooted at basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save stores the uploaded file under an optional subdirectory. Filenames
// are replaced with a UUID to prevent collisions and path tricks.
func (ls *LocalStorage) Save(_ context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := ls.baseURL + "/"
	if subPath != "" {
		url += subPath + "/"
	}
	url += uniqueFilename

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", uniqueFilename).
		Str("url", url).
		Msg("File saved")
	return url, nil
}

// Delete removes a stored file given its URL. Missing files are treated as
// already deleted.
func (ls *LocalStorage) Delete(_ context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	rel := fileURL
	if ls.baseURL != "" && strings.HasPrefix(fileURL, ls.baseURL) {
		rel = strings.TrimPrefix(fileURL, ls.baseURL)
	}
	rel = strings.TrimLeft(rel, "/")

	// Only the path below the storage root is meaningful; anything else
	// in the URL is discarded.
	physicalPath := filepath.Join(ls.basePath, filepath.Clean("/"+rel))

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
