package verdant

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Config holds the connection settings for an S3-compatible object store.
// Endpoint is empty for AWS proper; set it for MinIO or another compatible
// service.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	DisableSSL      bool
	BucketPrefix    string // optional prefix, e.g. "verdant-" -> "verdant-gallery"
}

// S3BlobStore implements BlobStore on an S3-compatible service. Each logical
// bucket maps to its own S3 bucket, created on first use when missing.
type S3BlobStore struct {
	client *s3.S3
	cfg    S3Config
}

// NewS3BlobStore builds an S3 client and ensures the site's buckets exist.
func NewS3BlobStore(cfg S3Config) (*S3BlobStore, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.DisableSSL {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create AWS session: %w", err)
	}

	store := &S3BlobStore{client: s3.New(sess), cfg: cfg}
	for _, b := range []string{BucketGallery, BucketProducts, BucketCatalog, BucketBlog, BucketLogos, BucketTeam} {
		store.ensureBucket(store.bucketName(b))
	}
	return store, nil
}

func (s *S3BlobStore) bucketName(bucket string) string {
	return s.cfg.BucketPrefix + bucket
}

func (s *S3BlobStore) ensureBucket(name string) {
	_, err := s.client.HeadBucket(&s3.HeadBucketInput{Bucket: aws.String(name)})
	if err == nil {
		return
	}
	// Best effort; a racing creator or an existing bucket are both fine.
	_, _ = s.client.CreateBucket(&s3.CreateBucketInput{Bucket: aws.String(name)})
}

func (s *S3BlobStore) Upload(bucket, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName(bucket)),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload to bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *S3BlobStore) PublicURL(bucket, key string) string {
	name := s.bucketName(bucket)
	endpoint := aws.StringValue(s.client.Config.Endpoint)
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if s.cfg.DisableSSL {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, name, key)
	}
	region := aws.StringValue(s.client.Config.Region)
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", name, region, key)
}

func (s *S3BlobStore) Delete(bucket, key string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName(bucket)),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete from bucket %s: %w", bucket, err)
	}
	return nil
}
