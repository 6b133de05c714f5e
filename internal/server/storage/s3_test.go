package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = S3Config{
	User:          "minioadmin",
	Password:      "minioadmin",
	Bucket:        "syllabi",
	Region:        "us-east-1",
	BaseEndpoint:  "http://127.0.0.1:9000",
	PresignExpiry: 5 * time.Minute,
}

func restoreSeams(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	origObj := getObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
		getObject = origObj
	})
}

func newTestStore(t *testing.T) *S3Store {
	t.Helper()
	restoreSeams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}

	s, err := NewS3Store(context.Background(), testConfig)
	require.NoError(t, err)
	return s
}

func TestNewS3Store_AppliesOptions(t *testing.T) {
	restoreSeams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		require.NotEmpty(t, optFns)
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		assert.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		require.NotNil(t, c)
		return &s3.PresignClient{}
	}

	s, err := NewS3Store(context.Background(), testConfig)
	require.NoError(t, err)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, 5*time.Minute, s.expiry)
}

func TestNewS3Store_LoadError(t *testing.T) {
	restoreSeams(t)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := NewS3Store(context.Background(), testConfig)
	assert.EqualError(t, err, "load-fail")
}

func TestPresignPut(t *testing.T) {
	s := newTestStore(t)

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, "syllabi", *in.Bucket)
		assert.True(t, strings.HasPrefix(*in.Key, "syllabi/"))
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		assert.Equal(t, 5*time.Minute, po.Expires)
		return &v4.PresignedHTTPRequest{URL: "https://put.example/" + *in.Key}, nil
	}

	key, url, err := s.PresignPut(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://put.example/"+key, url)

	presignPutObject = func(*s3.PresignClient, context.Context, *s3.PutObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign-fail")
	}
	_, _, err = s.PresignPut(context.Background())
	assert.ErrorIs(t, err, common.ErrExternalService)
	assert.Contains(t, err.Error(), "sign-fail")
}

func TestPresignGet(t *testing.T) {
	s := newTestStore(t)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, "k1", *in.Key)
		return &v4.PresignedHTTPRequest{URL: "https://get.example/k1"}, nil
	}

	url, err := s.PresignGet(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, "https://get.example/k1", url)

	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign-fail")
	}
	_, err = s.PresignGet(context.Background(), "k1")
	assert.ErrorIs(t, err, common.ErrExternalService)
}

func TestGet(t *testing.T) {
	s := newTestStore(t)

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		switch *in.Key {
		case "present":
			return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("CS101 Fall 2025"))}, nil
		case "missing":
			return nil, &types.NoSuchKey{}
		default:
			return nil, errors.New("connection reset")
		}
	}

	data, err := s.Get(context.Background(), "present")
	require.NoError(t, err)
	assert.Equal(t, "CS101 Fall 2025", string(data))

	_, err = s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrFileNotFound)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = s.Get(context.Background(), "other")
	assert.ErrorIs(t, err, common.ErrExternalService)
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestGet_SizeLimit(t *testing.T) {
	s := newTestStore(t)

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		size := int64(MaxObjectSize)
		if *in.Key == "oversized" {
			size++
		}
		return &s3.GetObjectOutput{Body: io.NopCloser(io.LimitReader(zeroReader{}, size))}, nil
	}

	data, err := s.Get(context.Background(), "at-limit")
	require.NoError(t, err)
	assert.Len(t, data, MaxObjectSize)

	data, err = s.Get(context.Background(), "oversized")
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrObjectTooLarge)
	assert.ErrorIs(t, err, common.ErrUnsupportedInput)
	assert.Contains(t, err.Error(), "File too large")
}

func TestNewStorageKey_Unique(t *testing.T) {
	a, b := NewStorageKey(), NewStorageKey()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "syllabi/"))
}
