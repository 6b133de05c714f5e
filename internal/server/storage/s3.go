// Package storage keeps uploaded syllabus files in an S3-compatible object
// store. Clients upload and download through presigned URLs; the server
// reads objects directly only for extraction.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/google/uuid"
)

// MaxObjectSize bounds how much of an object Get reads.
const MaxObjectSize = 32 << 20

// ErrObjectTooLarge is returned by Get for objects over MaxObjectSize.
var ErrObjectTooLarge = &common.Error{Kind: common.ErrUnsupportedInput, Msg: "File too large: the limit is 32 MB"}

// BlobStore resolves storage ids to upload targets, bytes and download URLs.
type BlobStore interface {
	PresignPut(ctx context.Context) (key string, url string, err error)
	Get(ctx context.Context, key string) ([]byte, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in)
	}
)

// S3Config holds the connection settings of an S3Store.
type S3Config struct {
	User          string
	Password      string
	Bucket        string
	Region        string
	BaseEndpoint  string
	PresignExpiry time.Duration
}

type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

// NewS3Store builds the S3 client once. Path-style addressing is used so
// MinIO style endpoints work.
func NewS3Store(ctx context.Context, c S3Config) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.User,
			c.Password,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	expiry := c.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &S3Store{
		client:  client,
		presign: newS3PresignClient(client),
		bucket:  c.Bucket,
		expiry:  expiry,
	}, nil
}

// NewStorageKey returns a fresh, date-partitioned object key.
func NewStorageKey() string {
	d := time.Now().UTC()
	return fmt.Sprintf("syllabi/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *S3Store) PresignPut(ctx context.Context) (string, string, error) {
	key := NewStorageKey()

	req, err := presignPutObject(s.presign, ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", "", fmt.Errorf("%w: presign put: %w", common.ErrExternalService, err)
	}

	return key, req.URL, nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("%w: presign get: %w", common.ErrExternalService, err)
	}

	return req.URL, nil
}

// Get reads the object stored under key. A missing object yields
// common.ErrFileNotFound.
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := getObject(s.client, ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
			return nil, common.ErrFileNotFound
		}
		return nil, fmt.Errorf("%w: get object: %w", common.ErrExternalService, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read object: %w", common.ErrExternalService, err)
	}
	if len(data) > MaxObjectSize {
		return nil, ErrObjectTooLarge
	}

	return data, nil
}
