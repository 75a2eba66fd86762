package previews

import (
	"context"
	"fmt"
	"io"
	"strings"

	"voice-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// prefix is where preview clips live inside the bucket.
const prefix = "previews/"

// Service handles voice preview clips in object storage.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new previews service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func objectName(voiceID string) string {
	return prefix + voiceID + ".mp3"
}

// EnsureBucket creates the previews bucket if it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	s.logger.Info("Creating previews bucket", zap.String("bucket", s.bucket))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Upload stores a preview clip for the voice, replacing any existing one.
func (s *Service) Upload(ctx context.Context, voiceID string, body io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName(voiceID), body, size, minio.PutObjectOptions{
		ContentType: "audio/mpeg",
	})
	if err != nil {
		return fmt.Errorf("failed to upload preview for %s: %w", voiceID, err)
	}
	return nil
}

// Fetch returns a reader over the voice's preview clip, or false if none exists.
func (s *Service) Fetch(ctx context.Context, voiceID string) (io.ReadCloser, bool, error) {
	name := objectName(voiceID)

	// StatObject first: GetObject is lazy and would surface "not found" only
	// on the first read.
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to stat preview for %s: %w", voiceID, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch preview for %s: %w", voiceID, err)
	}
	return obj, true, nil
}

// Delete removes the voice's preview clip. Deleting a missing clip is a no-op.
func (s *Service) Delete(ctx context.Context, voiceID string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName(voiceID), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete preview for %s: %w", voiceID, err)
	}
	return nil
}

// List returns the voice ids that have a preview clip stored.
func (s *Service) List(ctx context.Context) ([]string, error) {
	var ids []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list previews: %w", obj.Err)
		}
		id := strings.TrimPrefix(obj.Key, prefix)
		id = strings.TrimSuffix(id, ".mp3")
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
