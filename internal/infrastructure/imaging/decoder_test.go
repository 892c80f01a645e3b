package imaging_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/infrastructure/imaging"
)

func encode(t *testing.T, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestDecoder_Decode(t *testing.T) {
	ref, err := domain.ParseObjectRef("", "meals/u1/a.jpg")
	if err != nil {
		t.Fatalf("ParseObjectRef() failed: %v", err)
	}

	type want struct {
		Format      string
		ContentType string
		Width       int
		Height      int
	}
	tests := []struct {
		name    string
		data    func(t *testing.T) []byte
		want    want
		wantErr error
	}{
		{
			name: "正常系: PNGをデコードできる",
			data: func(t *testing.T) []byte { return encode(t, "png") },
			want: want{Format: "png", ContentType: "image/png", Width: 4, Height: 3},
		},
		{
			name: "正常系: JPEGをデコードできる",
			data: func(t *testing.T) []byte { return encode(t, "jpeg") },
			want: want{Format: "jpeg", ContentType: "image/jpeg", Width: 4, Height: 3},
		},
		{
			name: "正常系: GIFをデコードできる",
			data: func(t *testing.T) []byte { return encode(t, "gif") },
			want: want{Format: "gif", ContentType: "image/gif", Width: 4, Height: 3},
		},
		{
			name:    "異常系: 画像でないデータはErrUnsupportedFormat",
			data:    func(t *testing.T) []byte { return []byte("<html>expired</html>") },
			wantErr: imaging.ErrUnsupportedFormat,
		},
		{
			name:    "異常系: 空のデータはErrEmptyData",
			data:    func(t *testing.T) []byte { return nil },
			wantErr: imaging.ErrEmptyData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data(t)
			got, err := imaging.NewDecoder().Decode(ref, data)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			gotSummary := want{Format: got.Format(), ContentType: got.ContentType(), Width: got.Width(), Height: got.Height()}
			if diff := cmp.Diff(tt.want, gotSummary); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
			if got.Cost() != int64(len(data)) {
				t.Errorf("Cost() = %d, want %d", got.Cost(), len(data))
			}
		})
	}
}

func TestDecoder_Decode_Truncated(t *testing.T) {
	ref, _ := domain.ParseObjectRef("", "meals/a.png")
	data := encode(t, "png")

	if _, err := imaging.NewDecoder().Decode(ref, data[:len(data)/2]); err == nil {
		t.Error("Decode() of truncated png should fail")
	}
}

// pngHeader は画素データを持たず、IHDRで寸法だけを宣言するPNGを返す
func pngHeader(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA

	chunk := append([]byte("IHDR"), ihdr...)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestDecoder_Decode_PixelLimit(t *testing.T) {
	ref, err := domain.ParseObjectRef("", "meals/u1/a.png")
	if err != nil {
		t.Fatalf("ParseObjectRef() failed: %v", err)
	}

	tests := []struct {
		name    string
		decoder *imaging.Decoder
		data    func(t *testing.T) []byte
		wantErr error
	}{
		{
			name:    "異常系: 宣言された寸法が上限を超える場合はデコードせずErrImageTooLarge",
			decoder: imaging.NewDecoder(),
			data:    func(*testing.T) []byte { return pngHeader(100_000, 100_000) },
			wantErr: imaging.ErrImageTooLarge,
		},
		{
			name:    "異常系: 上限をわずかに超える画像もErrImageTooLarge",
			decoder: imaging.NewDecoderWithMaxPixels(11),
			data:    func(t *testing.T) []byte { return encode(t, "png") },
			wantErr: imaging.ErrImageTooLarge,
		},
		{
			name:    "正常系: 上限ちょうどの画像はデコードできる",
			decoder: imaging.NewDecoderWithMaxPixels(12),
			data:    func(t *testing.T) []byte { return encode(t, "png") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.decoder.Decode(ref, tt.data(t))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("Decode() = %v, want nil", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if diff := cmp.Diff([2]int{4, 3}, [2]int{got.Width(), got.Height()}); diff != "" {
				t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
