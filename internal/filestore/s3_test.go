package filestore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/miracle-catalog/internal/config"
)

type ObjectAPIMock struct {
	mock.Mock
}

func (m *ObjectAPIMock) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *ObjectAPIMock) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func TestS3_Upload(t *testing.T) {
	client := new(ObjectAPIMock)
	store := NewS3WithClient(client, "miracles", "http://minio:9000/miracles/")

	var captured *s3.PutObjectInput
	var body []byte
	client.On("PutObject", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*s3.PutObjectInput)
			body, _ = io.ReadAll(captured.Body)
		}).
		Return(&s3.PutObjectOutput{}, nil).Once()

	res, err := store.Upload(context.Background(), &UploadInput{
		Key:         "f.jpg",
		ContentType: "image/jpeg",
		Size:        4,
		Data:        strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/miracles/f.jpg", res.URL)

	require.NotNil(t, captured)
	assert.Equal(t, "miracles", aws.ToString(captured.Bucket))
	assert.Equal(t, "f.jpg", aws.ToString(captured.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(captured.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(captured.ContentLength))
	assert.Equal(t, "jpeg", string(body))
	client.AssertExpectations(t)
}

func TestS3_UploadError(t *testing.T) {
	client := new(ObjectAPIMock)
	store := NewS3WithClient(client, "miracles", "http://minio:9000/miracles")
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied")).Once()

	res, err := store.Upload(context.Background(), &UploadInput{Key: "f.jpg", Data: strings.NewReader("x")})
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestS3_Delete(t *testing.T) {
	client := new(ObjectAPIMock)
	store := NewS3WithClient(client, "miracles", "http://minio:9000/miracles")
	client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Bucket) == "miracles" && aws.ToString(in.Key) == "f.jpg"
	})).Return(&s3.DeleteObjectOutput{}, nil).Once()

	require.NoError(t, store.Delete(context.Background(), "f.jpg"))
	assert.ErrorIs(t, store.Delete(context.Background(), "../f.jpg"), ErrInvalidKey)
	client.AssertExpectations(t)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Uploads
		want string
	}{
		{
			name: "explicit public url",
			cfg:  config.Uploads{S3PublicURL: "https://cdn.example.org", S3Endpoint: "http://minio:9000", S3Bucket: "b"},
			want: "https://cdn.example.org",
		},
		{
			name: "custom endpoint",
			cfg:  config.Uploads{S3Endpoint: "http://minio:9000/", S3Bucket: "b"},
			want: "http://minio:9000/b",
		},
		{
			name: "aws",
			cfg:  config.Uploads{S3Bucket: "b", S3Region: "sa-east-1"},
			want: "https://b.s3.sa-east-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}

func TestNewS3(t *testing.T) {
	store, err := NewS3(context.Background(), config.Uploads{
		S3Endpoint:  "http://127.0.0.1:9000",
		S3Region:    "us-east-1",
		S3Bucket:    "miracles",
		S3AccessKey: "minioadmin",
		S3SecretKey: "minioadmin",
	})
	require.NoError(t, err)

	url, err := store.GetURL(context.Background(), "x.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/miracles/x.pdf", url)
}
