package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"event-checkin-backend/config"
)

// GridFSStore keeps photos in the Mongo GridFS bucket and serves them
// back through the /api/v1/files route.
type GridFSStore struct {
	baseURL string
}

func NewGridFSStore(publicBaseURL string) *GridFSStore {
	return &GridFSStore{baseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *GridFSStore) Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	bucket, err := config.GetGridFSBucket()
	if err != nil {
		return "", fmt.Errorf("failed to open GridFS bucket: %w", err)
	}

	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	fileID, err := bucket.UploadFromStream(name, r, uploadOpts)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo to GridFS: %w", err)
	}

	return fmt.Sprintf("%s/api/v1/files/%s", s.baseURL, fileID.Hex()), nil
}
