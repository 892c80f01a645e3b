package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/usecase"
)

// DefaultMaxPixels はデコードを許可する画素数の上限（約4000万画素）
const DefaultMaxPixels = 40_000_000

var (
	ErrEmptyData         = errors.New("image data is empty")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrImageTooLarge     = errors.New("image dimensions exceed the pixel limit")
)

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

var _ usecase.ImageDecoder = (*Decoder)(nil)

// Decoder はJPEG、PNG、GIF、WebPを検証付きでデコードする
type Decoder struct {
	maxPixels int64
}

func NewDecoder() *Decoder {
	return NewDecoderWithMaxPixels(DefaultMaxPixels)
}

func NewDecoderWithMaxPixels(maxPixels int64) *Decoder {
	return &Decoder{maxPixels: maxPixels}
}

func (d *Decoder) Decode(ref domain.ObjectRef, data []byte) (*domain.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	// ヘッダーの寸法だけを先に読み、巨大な画像の確保を避ける
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("画像のヘッダーを読み取れません: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > d.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	contentType, ok := contentTypes[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	bounds := img.Bounds()
	return domain.NewImage(ref, data, contentType, format, bounds.Dx(), bounds.Dy()), nil
}
