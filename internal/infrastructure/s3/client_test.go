package s3_test

import (
	"context"
	"errors"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/infrastructure"
	s3client "github.com/na2na-p/mealcache/internal/infrastructure/s3"
	"github.com/na2na-p/mealcache/internal/usecase"
)

type mockS3API struct {
	headObjectFunc func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	headBucketFunc func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

func (m *mockS3API) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if m.headObjectFunc != nil {
		return m.headObjectFunc(ctx, params, optFns...)
	}
	return &s3.HeadObjectOutput{}, nil
}

func (m *mockS3API) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if m.headBucketFunc != nil {
		return m.headBucketFunc(ctx, params, optFns...)
	}
	return &s3.HeadBucketOutput{}, nil
}

type mockPresignClient struct {
	presignGetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (m *mockPresignClient) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if m.presignGetObjectFunc != nil {
		return m.presignGetObjectFunc(ctx, params, optFns...)
	}
	return &v4.PresignedHTTPRequest{URL: "https://example.com/default"}, nil
}

func presignFactory(mock *mockPresignClient) s3client.PresignClientFactory {
	return func(_ *s3.Client) s3client.PresignClientInterface {
		return mock
	}
}

type apiError struct {
	code string
}

func (e *apiError) Error() string                 { return "api error " + e.code }
func (e *apiError) ErrorCode() string             { return e.code }
func (e *apiError) ErrorMessage() string          { return e.code }
func (e *apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestS3Client_MintSignedURL(t *testing.T) {
	type fields struct {
		api     func(t *testing.T) *mockS3API
		presign func(t *testing.T) *mockPresignClient
	}
	type args struct {
		bucket string
		path   string
		ttl    time.Duration
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		want    string
		wantErr error
	}{
		{
			name: "正常系: オブジェクトが存在する場合、指定TTLの署名付きURLが返る",
			fields: fields{
				api: func(t *testing.T) *mockS3API {
					return &mockS3API{
						headObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
							if *params.Bucket != "meal-photos" || *params.Key != "meals/u1/a.jpg" {
								t.Errorf("unexpected head input: %s/%s", *params.Bucket, *params.Key)
							}
							return &s3.HeadObjectOutput{}, nil
						},
					}
				},
				presign: func(t *testing.T) *mockPresignClient {
					return &mockPresignClient{
						presignGetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
							opts := &s3.PresignOptions{}
							for _, fn := range optFns {
								fn(opts)
							}
							if opts.Expires != time.Hour {
								t.Errorf("unexpected expires: got %v, want %v", opts.Expires, time.Hour)
							}
							return &v4.PresignedHTTPRequest{URL: "https://s3.example.com/meal-photos/meals/u1/a.jpg?X-Amz-Signature=abc"}, nil
						},
					}
				},
			},
			args: args{bucket: "meal-photos", path: "meals/u1/a.jpg", ttl: time.Hour},
			want: "https://s3.example.com/meal-photos/meals/u1/a.jpg?X-Amz-Signature=abc",
		},
		{
			name: "異常系: HeadObjectがNotFoundの場合、ErrObjectNotFoundが返る",
			fields: fields{
				api: func(t *testing.T) *mockS3API {
					return &mockS3API{
						headObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
							return nil, &types.NotFound{}
						},
					}
				},
				presign: func(t *testing.T) *mockPresignClient {
					return &mockPresignClient{
						presignGetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
							t.Error("presign must not be called for a missing object")
							return nil, errors.New("unexpected")
						},
					}
				},
			},
			args:    args{bucket: "meal-photos", path: "meals/missing.jpg", ttl: time.Hour},
			wantErr: domain.ErrObjectNotFound,
		},
		{
			name: "異常系: AccessDeniedの場合、ErrAccessDeniedが返る",
			fields: fields{
				api: func(t *testing.T) *mockS3API {
					return &mockS3API{
						headObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
							return nil, &apiError{code: "Forbidden"}
						},
					}
				},
				presign: func(t *testing.T) *mockPresignClient { return &mockPresignClient{} },
			},
			args:    args{bucket: "private", path: "meals/a.jpg", ttl: time.Hour},
			wantErr: domain.ErrAccessDenied,
		},
		{
			name: "異常系: 署名に失敗した場合、sign操作のStorageErrorが返る",
			fields: fields{
				api: func(t *testing.T) *mockS3API { return &mockS3API{} },
				presign: func(t *testing.T) *mockPresignClient {
					return &mockPresignClient{
						presignGetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
							return nil, errors.New("credentials expired")
						},
					}
				},
			},
			args:    args{bucket: "meal-photos", path: "meals/a.jpg", ttl: time.Hour},
			wantErr: &infrastructure.StorageError{Operation: infrastructure.OperationSign},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := s3client.NewS3ClientWithPresignFactory(tt.fields.api(t), nil, "meal-photos", presignFactory(tt.fields.presign(t)))

			got, err := client.MintSignedURL(context.Background(), tt.args.bucket, tt.args.path, tt.args.ttl)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("MintSignedURL() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("MintSignedURL() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MintSignedURL() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestS3HealthChecker_Check(t *testing.T) {
	tests := []struct {
		name    string
		api     *mockS3API
		wantErr bool
	}{
		{
			name: "正常系: HeadBucketが成功した場合、nilが返る",
			api:  &mockS3API{},
		},
		{
			name: "異常系: HeadBucketが失敗した場合、エラーが返る",
			api: &mockS3API{
				headBucketFunc: func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
					return nil, &apiError{code: "NoSuchBucket"}
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := s3client.NewS3ClientWithPresignFactory(tt.api, nil, "meal-photos", presignFactory(&mockPresignClient{}))
			checker := s3client.NewS3HealthChecker(client)

			if checker.Component() != usecase.ComponentObjectStore || checker.Backend() != "s3" {
				t.Errorf("Component()/Backend() = %s/%s, want object_store/s3", checker.Component(), checker.Backend())
			}
			err := checker.Check(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewS3Connection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     s3client.S3Config
		wantErr bool
	}{
		{
			name: "正常系: カスタムエンドポイントで接続を作成できる",
			cfg: s3client.S3Config{
				Region:          "us-east-1",
				Endpoint:        "http://localhost:9000",
				AccessKeyID:     "test-access-key",
				SecretAccessKey: "test-secret-key",
				UsePathStyle:    true,
			},
		},
		{
			name:    "異常系: リージョンが空の場合はエラー",
			cfg:     s3client.S3Config{AccessKeyID: "k", SecretAccessKey: "s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := s3client.NewS3Connection(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewS3Connection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && client == nil {
				t.Error("NewS3Connection() returned nil client")
			}
		})
	}
}
