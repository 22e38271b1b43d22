package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Scheme is the location scheme served by S3Source
const S3Scheme = "s3"

// ObjectGetter is the subset of the S3 client used by S3Source
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source opens exports stored as S3 objects, addressed as s3://bucket/key
type S3Source struct {
	client    ObjectGetter
	newClient func(ctx context.Context) (ObjectGetter, error)
	once      sync.Once
	initErr   error
	logger    *zap.Logger
}

// NewS3Source creates a new S3 source around an existing client
func NewS3Source(client ObjectGetter, logger *zap.Logger) *S3Source {
	return &S3Source{
		client: client,
		logger: logger,
	}
}

// NewLazyS3Source creates an S3 source for region. The AWS configuration is
// only loaded when the first s3:// location is opened.
func NewLazyS3Source(region string, logger *zap.Logger) *S3Source {
	return &S3Source{
		newClient: func(ctx context.Context) (ObjectGetter, error) {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
			if err != nil {
				return nil, err
			}
			return s3.NewFromConfig(awsCfg), nil
		},
		logger: logger,
	}
}

func (s *S3Source) getClient(ctx context.Context) (ObjectGetter, error) {
	s.once.Do(func() {
		if s.client != nil || s.newClient == nil {
			return
		}
		s.client, s.initErr = s.newClient(ctx)
	})
	if s.initErr != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", s.initErr)
	}
	if s.client == nil {
		return nil, fmt.Errorf("s3 client is not configured")
	}
	return s.client, nil
}

// Open fetches the object at location
func (s *S3Source) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3Location(location)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 object: %w", err)
	}

	s.logger.Debug("Reading dataset from S3",
		zap.String("bucket", bucket),
		zap.String("key", key))

	return out.Body, nil
}

// ParseS3Location splits s3://bucket/key into bucket and key
func ParseS3Location(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 location %q: %w", location, err)
	}
	if u.Scheme != S3Scheme {
		return "", "", fmt.Errorf("invalid s3 location %q: scheme must be %s", location, S3Scheme)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 location %q: bucket and key are required", location)
	}
	return u.Host, key, nil
}
