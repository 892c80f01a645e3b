package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type PresignClientInterface interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type PresignClientFactory func(client *s3.Client) PresignClientInterface

func DefaultPresignClientFactory(client *s3.Client) PresignClientInterface {
	return s3.NewPresignClient(client)
}

const (
	DefaultPresignTTL = 60 * time.Minute
)

func (c *S3Client) presignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultPresignTTL
	}

	presignClient := c.presignClientFactory(c.presignClient)
	presignResult, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign get object: %w", err)
	}

	return presignResult.URL, nil
}
