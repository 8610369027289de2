// Package storage hides where attendee photos actually live. Uploads go
// in under a caller-supplied unique name and come back as a public URL
// that is stored verbatim on the attendee record.
package storage

import (
	"context"
	"fmt"
	"io"

	"event-checkin-backend/config"
)

type PhotoStore interface {
	// Upload stores one photo blob under name and returns the public
	// retrieval URL. Names must be unique per call, the store is
	// allowed to overwrite silently.
	Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error)
}

// NewPhotoStore picks the driver from configuration.
func NewPhotoStore(cfg *config.AppConfig) (PhotoStore, error) {
	switch cfg.StorageDriver {
	case "gridfs":
		return NewGridFSStore(cfg.PublicBaseURL), nil
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want gridfs or s3)", cfg.StorageDriver)
	}
}
