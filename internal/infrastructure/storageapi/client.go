package storageapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/infrastructure"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const (
	backendName = "storageapi"

	serviceRole      = "service_role"
	serviceTokenTTL  = time.Hour
	tokenRenewBefore = 5 * time.Minute

	maxErrorBodyBytes = 4 * 1024
)

var _ usecase.RemoteObjectStore = (*Client)(nil)

var ErrMissingCredentials = errors.New("storage api requires a service token or a jwt secret")

type Config struct {
	// BaseURL はストレージAPIのルート（例: https://xxxx.example.co/storage/v1）
	BaseURL string
	// ServiceToken が空の場合は JWTSecret からサービスロールのトークンを発行する
	ServiceToken string
	JWTSecret    string
	// Bucket はヘルスチェックで確認するバケット
	Bucket string
}

// Client はホスティング型バックエンドのストレージREST APIで署名付きURLを発行する
type Client struct {
	httpClient *http.Client
	baseURL    string
	staticKey  string
	secret     []byte
	bucket     string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("storage api base url is required")
	}
	if cfg.ServiceToken == "" && cfg.JWTSecret == "" {
		return nil, ErrMissingCredentials
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		staticKey:  cfg.ServiceToken,
		secret:     []byte(cfg.JWTSecret),
		bucket:     cfg.Bucket,
	}, nil
}

// bearerToken は設定済みのトークン、または期限が近づくまで再利用する発行済みトークンを返す
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if c.staticKey != "" {
		return c.staticKey, nil
	}

	now := ctxtime.Now(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && now.Add(tokenRenewBefore).Before(c.tokenExpiry) {
		return c.token, nil
	}

	expiry := now.Add(serviceTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": serviceRole,
		"iss":  "mealcache",
		"iat":  now.Unix(),
		"exp":  expiry.Unix(),
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("サービストークンの署名に失敗しました: %w", err)
	}
	c.token = signed
	c.tokenExpiry = expiry
	return signed, nil
}

type signRequest struct {
	ExpiresIn int64 `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func (c *Client) MintSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	body, err := json.Marshal(signRequest{ExpiresIn: int64(ttl / time.Second)})
	if err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationSign, err)
	}

	endpoint := fmt.Sprintf("%s/object/sign/%s/%s", c.baseURL, url.PathEscape(bucket), escapePath(path))
	resp, err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationSign, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp); err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationSign, err)
	}

	var out signResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationSign,
			fmt.Errorf("レスポンスのデコードに失敗しました: %w", err))
	}
	if out.SignedURL == "" {
		return "", infrastructure.NewStorageError(backendName, infrastructure.OperationSign,
			errors.New("レスポンスに署名付きURLが含まれていません"))
	}

	if strings.HasPrefix(out.SignedURL, "http://") || strings.HasPrefix(out.SignedURL, "https://") {
		return out.SignedURL, nil
	}
	return c.baseURL + "/" + strings.TrimLeft(out.SignedURL, "/"), nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, error) {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ストレージAPIへのリクエストに失敗しました: %w", err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	cause := fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(msg)))
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrObjectNotFound, cause)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAccessDenied, cause)
	default:
		return cause
	}
}

// HealthChecker は既定バケットの取得でAPIへの疎通と認証を確認する
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
	endpoint := fmt.Sprintf("%s/bucket/%s", h.client.baseURL, url.PathEscape(h.client.bucket))
	resp, err := h.client.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("storage api health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp); err != nil {
		return fmt.Errorf("storage api health check failed: %w",
			infrastructure.NewStorageError(backendName, infrastructure.OperationHealth, err))
	}
	return nil
}
