package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"agsys/internal/domain/entity"
	"agsys/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3API is the part of the S3 client used by the store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3EmbeddingStore struct {
	client S3API
	bucket string
}

// NewS3EmbeddingStore stores documents as JSON objects under embeddings/ in bucket.
func NewS3EmbeddingStore(client S3API, bucket string) EmbeddingStore {
	return &s3EmbeddingStore{client: client, bucket: bucket}
}

func (s *s3EmbeddingStore) Bucket() string {
	return s.bucket
}

func (s *s3EmbeddingStore) Put(ctx context.Context, document entity.EmbeddingDocument) (string, error) {
	body, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("encode embedding document: %w", err)
	}

	key := entity.EmbeddingKey(document.ID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}

	return key, nil
}

func (s *s3EmbeddingStore) Get(ctx context.Context, id string) (*entity.EmbeddingDocument, error) {
	key := entity.EmbeddingKey(id)
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, model.NewError(model.ErrNotFound, err, "Embedding not found: %s", id)
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, err)
	}

	var document entity.EmbeddingDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("decode s3://%s/%s: %w", s.bucket, key, err)
	}

	return &document, nil
}

func (s *s3EmbeddingStore) Exists(ctx context.Context, id string) (bool, error) {
	key := entity.EmbeddingKey(id)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("head s3://%s/%s: %w", s.bucket, key, err)
	}
	return true, nil
}

func (s *s3EmbeddingStore) Delete(ctx context.Context, id string) error {
	key := entity.EmbeddingKey(id)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

// isNotFound covers GetObject (NoSuchKey) and HeadObject, which has no body and reports a bare 404.
func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "404":
			return true
		}
	}
	return false
}
