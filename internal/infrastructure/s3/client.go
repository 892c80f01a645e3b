package s3

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/infrastructure"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const backendName = "s3"

var _ usecase.RemoteObjectStore = (*S3Client)(nil)

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	// Bucket はヘルスチェックで確認するバケット
	Bucket       string
	UsePathStyle bool
}

type S3API interface {
	HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Client はS3互換ストレージに対して署名付きURLを発行する
type S3Client struct {
	client               S3API
	presignClient        *s3.Client
	presignClientFactory PresignClientFactory
	healthBucket         string
}

func NewS3Connection(cfg S3Config) (*s3.Client, error) {
	if cfg.Region == "" {
		return nil, errors.New("s3 region is required")
	}
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return client, nil
}

func NewS3Client(client *s3.Client, healthBucket string) *S3Client {
	return NewS3ClientWithPresignFactory(client, client, healthBucket, nil)
}

func NewS3ClientWithPresignFactory(client S3API, presignClient *s3.Client, healthBucket string, factory PresignClientFactory) *S3Client {
	if factory == nil {
		factory = DefaultPresignClientFactory
	}
	return &S3Client{
		client:               client,
		presignClient:        presignClient,
		presignClientFactory: factory,
		healthBucket:         healthBucket,
	}
}

// MintSignedURL はオブジェクトの存在を確認してから読み取り用の署名付きURLを発行する
// 署名だけではオブジェクトの有無を判別できないため、先にHeadObjectを行う
func (c *S3Client) MintSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	_, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationStat, classifyError(err))
	}

	url, err := c.presignGet(ctx, bucket, path, ttl)
	if err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationSign, err)
	}
	return url, nil
}

func (c *S3Client) HeadBucket(ctx context.Context) error {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.healthBucket),
	})
	if err != nil {
		return infrastructure.NewStorageError(backendName, infrastructure.OperationHealth, classifyError(err))
	}
	return nil
}

// classifyError はS3のエラーをドメインのエラーに対応付ける
func classifyError(err error) error {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: %w", domain.ErrObjectNotFound, err)
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %w", domain.ErrObjectNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return fmt.Errorf("%w: %w", domain.ErrObjectNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %w", domain.ErrAccessDenied, err)
		}
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", domain.ErrObjectNotFound, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", domain.ErrAccessDenied, err)
		}
	}
	return err
}
