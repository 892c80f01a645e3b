package domain

// Image はデコード済みの画像
// dataはエンコードされたままのバイト列で、Costの計算とレスポンスに使う
type Image struct {
	ref         ObjectRef
	data        []byte
	contentType string
	format      string
	width       int
	height      int
}

func NewImage(ref ObjectRef, data []byte, contentType, format string, width, height int) *Image {
	return &Image{
		ref:         ref,
		data:        data,
		contentType: contentType,
		format:      format,
		width:       width,
		height:      height,
	}
}

func (i *Image) Ref() ObjectRef {
	return i.ref
}

func (i *Image) Data() []byte {
	return i.data
}

func (i *Image) ContentType() string {
	return i.contentType
}

func (i *Image) Format() string {
	return i.format
}

func (i *Image) Width() int {
	return i.width
}

func (i *Image) Height() int {
	return i.height
}

// Cost はメモリキャッシュの容量計算に使うバイト数
func (i *Image) Cost() int64 {
	return int64(len(i.data))
}
