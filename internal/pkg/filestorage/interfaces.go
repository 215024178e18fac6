package filestorage

import (
	"context"
	"mime/multipart"
)

// Storage is the file store contract the workflow depends on: persist an
// uploaded file and hand back a retrievable URL, or remove one by its URL.
// The workflow itself only ever stores and reads URLs, never raw bytes.
type Storage interface {
	// Save stores an uploaded file under an optional subdirectory and
	// returns the URL clients use to retrieve it.
	Save(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error)

	// Delete removes a previously stored file by its URL. Deleting a
	// missing file is not an error.
	Delete(ctx context.Context, fileURL string) error
}
