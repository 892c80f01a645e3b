package minio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/infrastructure"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const backendName = "minio"

var _ usecase.RemoteObjectStore = (*Client)(nil)

type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Region          string
	// Bucket はヘルスチェックで確認するバケット
	Bucket string
}

// ObjectAPI は minio.Client のうち利用する操作
type ObjectAPI interface {
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

type Client struct {
	api          ObjectAPI
	healthBucket string
}

func NewConnection(cfg Config) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}
	return client, nil
}

func NewClient(api ObjectAPI, healthBucket string) *Client {
	return &Client{api: api, healthBucket: healthBucket}
}

func (c *Client) MintSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	if _, err := c.api.StatObject(ctx, bucket, path, minio.StatObjectOptions{}); err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationStat, classifyError(err))
	}

	u, err := c.api.PresignedGetObject(ctx, bucket, path, ttl, nil)
	if err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationSign, classifyError(err))
	}
	return u.String(), nil
}

func classifyError(err error) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" || resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrObjectNotFound, err)
	case resp.Code == "AccessDenied" || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAccessDenied, err)
	}
	return err
}

// HealthChecker は既定バケットの存在を確認する
type HealthChecker struct {
	client *Client
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

func (h *HealthChecker) Component() usecase.Component {
	return usecase.ComponentObjectStore
}

func (h *HealthChecker) Backend() string {
	return backendName
}

func (h *HealthChecker) Check(ctx context.Context) error {
	exists, err := h.client.api.BucketExists(ctx, h.client.healthBucket)
	if err != nil {
		return fmt.Errorf("minio health check failed: %w",
			infrastructure.NewStorageError(backendName, infrastructure.OperationHealth, classifyError(err)))
	}
	if !exists {
		return fmt.Errorf("minio health check failed: bucket %q: %w", h.client.healthBucket, domain.ErrObjectNotFound)
	}
	return nil
}
