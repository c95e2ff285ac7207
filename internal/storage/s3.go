package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// S3BlobStore stores uploads in an S3 bucket and serves them through
// presigned GET URLs.
type S3BlobStore struct {
	bucket   string
	signTTL  time.Duration
	uploader *s3manager.Uploader
	svc      *s3.S3
}

// NewS3BlobStore 创建 S3 客户端。
func NewS3BlobStore(region, bucket string, signTTL time.Duration) (*S3BlobStore, error) {
	// AWS client session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3BlobStore{
		bucket:   bucket,
		signTTL:  signTTL,
		uploader: s3manager.NewUploader(sess),
		svc:      s3.New(sess),
	}, nil
}

// Put validates that the payload decodes as an image, then uploads it under
// prefix with a date-uuid object key. The returned key excludes the prefix.
func (s *S3BlobStore) Put(prefix string, upload Upload) (string, error) {
	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return "", err
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", ErrNotImage
	}

	key := generateKey(upload.Filename)
	_, err = s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(prefix + key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(upload.ContentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// SignedURL presigns a GET for the stored object. URLs expire after the
// configured TTL, so callers derive a fresh one on every read.
func (s *S3BlobStore) SignedURL(prefix, key string) (string, error) {
	req, _ := s.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(prefix + key),
	})
	return req.Presign(s.signTTL)
}

// generateKey 生成唯一对象 key，保留原始扩展名。
func generateKey(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
}
