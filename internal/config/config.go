package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "MEALCACHE"
	ConfigPathEnv = "MEALCACHE_CONFIG"

	BackendS3         = "s3"
	BackendMinIO      = "minio"
	BackendStorageAPI = "storageapi"

	SignedURLBackendMemory = "memory"
	SignedURLBackendRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	TrustedProxyCIDRs []string      `mapstructure:"trusted_proxy_cidrs"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StorageConfig struct {
	Backend       string           `mapstructure:"backend"`
	DefaultBucket string           `mapstructure:"default_bucket"`
	S3            S3Config         `mapstructure:"s3"`
	MinIO         MinIOConfig      `mapstructure:"minio"`
	StorageAPI    StorageAPIConfig `mapstructure:"storageapi"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
}

type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type StorageAPIConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	ServiceToken string `mapstructure:"service_token"`
	JWTSecret    string `mapstructure:"jwt_secret"`
}

type CacheConfig struct {
	MemoryMaxBytes          int64         `mapstructure:"memory_max_bytes"`
	DiskDir                 string        `mapstructure:"disk_dir"`
	DiskMaxBytes            int64         `mapstructure:"disk_max_bytes"`
	SignedURLBackend        string        `mapstructure:"signed_url_backend"`
	SignedURLMaxEntries     int           `mapstructure:"signed_url_max_entries"`
	SignedURLOverflowMargin int           `mapstructure:"signed_url_overflow_margin"`
	SignedURLSweepInterval  time.Duration `mapstructure:"signed_url_sweep_interval"`
	DiskSweepInterval       time.Duration `mapstructure:"disk_sweep_interval"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type FetchConfig struct {
	SignTimeout    time.Duration `mapstructure:"sign_timeout"`
	Timeout        time.Duration `mapstructure:"timeout"`
	PreloadTimeout time.Duration `mapstructure:"preload_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	// PreloadRate は1秒あたりのプリロード開始数。0以下で無制限
	PreloadRate  float64 `mapstructure:"preload_rate"`
	PreloadBurst int     `mapstructure:"preload_burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.trusted_proxy_cidrs", []string{})

	v.SetDefault("log.level", "info")

	v.SetDefault("storage.backend", BackendS3)
	v.SetDefault("storage.default_bucket", "meal-photos")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.access_key_id", "")
	v.SetDefault("storage.s3.secret_access_key", "")
	v.SetDefault("storage.s3.region", "")
	v.SetDefault("storage.s3.use_path_style", false)
	v.SetDefault("storage.minio.endpoint", "")
	v.SetDefault("storage.minio.access_key_id", "")
	v.SetDefault("storage.minio.secret_access_key", "")
	v.SetDefault("storage.minio.region", "")
	v.SetDefault("storage.minio.use_ssl", true)
	v.SetDefault("storage.storageapi.base_url", "")
	v.SetDefault("storage.storageapi.service_token", "")
	v.SetDefault("storage.storageapi.jwt_secret", "")

	v.SetDefault("cache.memory_max_bytes", 50*1024*1024)
	v.SetDefault("cache.disk_dir", defaultDiskDir())
	v.SetDefault("cache.disk_max_bytes", 200*1024*1024)
	v.SetDefault("cache.signed_url_backend", SignedURLBackendMemory)
	v.SetDefault("cache.signed_url_max_entries", 1000)
	v.SetDefault("cache.signed_url_overflow_margin", 100)
	v.SetDefault("cache.signed_url_sweep_interval", 5*time.Minute)
	v.SetDefault("cache.disk_sweep_interval", 60*time.Minute)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("fetch.sign_timeout", 20*time.Second)
	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.preload_timeout", 60*time.Second)
	v.SetDefault("fetch.max_body_bytes", 20*1024*1024)
	v.SetDefault("fetch.preload_rate", 8.0)
	v.SetDefault("fetch.preload_burst", 4)
}

func defaultDiskDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "mealcache")
}

// Load は設定ファイル、環境変数、デフォルト値の順に優先して設定を読み込む
// MEALCACHE_CONFIG が指定されていればそのファイルを、なければカレントディレクトリの config.yaml を読む
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(ConfigPathEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		invalid("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Storage.Backend {
	case BackendS3:
		if c.Storage.S3.Region == "" {
			invalid("storage.s3.region is required")
		}
	case BackendMinIO:
		if c.Storage.MinIO.Endpoint == "" {
			invalid("storage.minio.endpoint is required")
		}
		if c.Storage.MinIO.AccessKeyID == "" || c.Storage.MinIO.SecretAccessKey == "" {
			invalid("storage.minio credentials are required")
		}
	case BackendStorageAPI:
		if c.Storage.StorageAPI.BaseURL == "" {
			invalid("storage.storageapi.base_url is required")
		}
		if c.Storage.StorageAPI.ServiceToken == "" && c.Storage.StorageAPI.JWTSecret == "" {
			invalid("storage.storageapi.service_token or storage.storageapi.jwt_secret is required")
		}
	default:
		invalid("unknown storage.backend %q", c.Storage.Backend)
	}

	switch c.Cache.SignedURLBackend {
	case SignedURLBackendMemory:
	case SignedURLBackendRedis:
		if c.Redis.Host == "" {
			invalid("redis.host is required when cache.signed_url_backend is redis")
		}
	default:
		invalid("unknown cache.signed_url_backend %q", c.Cache.SignedURLBackend)
	}

	if c.Cache.MemoryMaxBytes <= 0 {
		invalid("cache.memory_max_bytes must be positive")
	}
	if c.Cache.DiskMaxBytes <= 0 {
		invalid("cache.disk_max_bytes must be positive")
	}
	if c.Cache.DiskDir == "" {
		invalid("cache.disk_dir is required")
	}
	if c.Cache.SignedURLMaxEntries <= 0 {
		invalid("cache.signed_url_max_entries must be positive")
	}
	if c.Cache.SignedURLOverflowMargin < 0 || c.Cache.SignedURLOverflowMargin > c.Cache.SignedURLMaxEntries {
		invalid("cache.signed_url_overflow_margin must be between 0 and signed_url_max_entries")
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		invalid("fetch.max_body_bytes must be positive")
	}
	if c.Fetch.SignTimeout <= 0 || c.Fetch.Timeout <= 0 || c.Fetch.PreloadTimeout <= 0 {
		invalid("fetch timeouts must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, Region: %s, UsePathStyle: %t}",
		c.Endpoint, c.AccessKeyID, c.Region, c.UsePathStyle)
}

func (c MinIOConfig) String() string {
	return fmt.Sprintf("MinIOConfig{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, Region: %s, UseSSL: %t}",
		c.Endpoint, c.AccessKeyID, c.Region, c.UseSSL)
}

func (c StorageAPIConfig) String() string {
	return fmt.Sprintf("StorageAPIConfig{BaseURL: %s, ServiceToken: ***, JWTSecret: ***}", c.BaseURL)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d, PoolSize: %d}",
		c.Host, c.Port, c.DB, c.PoolSize)
}
