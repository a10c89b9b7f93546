package filestore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/magabrotheeeer/miracle-catalog/internal/config"
)

// ObjectAPI — часть клиента S3, которую использует хранилище.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3 хранит файлы в бакете S3-совместимого хранилища.
type S3 struct {
	client  ObjectAPI
	bucket  string
	baseURL string
}

// NewS3 создаёт клиент по настройкам uploads.
// Если задан S3Endpoint, используется path-style адресация (MinIO).
func NewS3(ctx context.Context, cfg config.Uploads) (*S3, error) {
	const op = "filestore.NewS3"

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3WithClient(client, cfg.S3Bucket, publicBaseURL(cfg)), nil
}

// NewS3WithClient собирает хранилище поверх готового клиента.
func NewS3WithClient(client ObjectAPI, bucket, baseURL string) *S3 {
	return &S3{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload кладёт объект в бакет.
func (s *S3) Upload(ctx context.Context, input *UploadInput) (*UploadResult, error) {
	const op = "filestore.S3.Upload"
	if !validKey(input.Key) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidKey)
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(input.Key),
		Body:   input.Data,
	}
	if input.ContentType != "" {
		in.ContentType = aws.String(input.ContentType)
	}
	if input.Size > 0 {
		in.ContentLength = aws.Int64(input.Size)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &UploadResult{Key: input.Key, URL: s.url(input.Key)}, nil
}

// Delete удаляет объект из бакета.
func (s *S3) Delete(ctx context.Context, key string) error {
	const op = "filestore.S3.Delete"
	if !validKey(key) {
		return fmt.Errorf("%s: %w", op, ErrInvalidKey)
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetURL возвращает публичный URL объекта.
func (s *S3) GetURL(_ context.Context, key string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("filestore.S3.GetURL: %w", ErrInvalidKey)
	}
	return s.url(key), nil
}

func (s *S3) url(key string) string {
	return s.baseURL + "/" + key
}

func publicBaseURL(cfg config.Uploads) string {
	switch {
	case cfg.S3PublicURL != "":
		return cfg.S3PublicURL
	case cfg.S3Endpoint != "":
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}
}
