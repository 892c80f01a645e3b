package domain

// ObjectRef はバケットとストレージパスの組
type ObjectRef struct {
	bucket Bucket
	path   StoragePath
}

func NewObjectRef(bucket Bucket, path StoragePath) ObjectRef {
	return ObjectRef{bucket: bucket, path: path}
}

// ParseObjectRef は文字列からObjectRefを生成する。bucketが空の場合はDefaultBucketを使う
func ParseObjectRef(bucket, path string) (ObjectRef, error) {
	b, err := NewBucketOrDefault(bucket)
	if err != nil {
		return ObjectRef{}, err
	}
	p, err := NewStoragePath(path)
	if err != nil {
		return ObjectRef{}, err
	}
	return NewObjectRef(b, p), nil
}

func (r ObjectRef) Bucket() Bucket {
	return r.bucket
}

func (r ObjectRef) Path() StoragePath {
	return r.path
}

// CacheKey はメモリキャッシュと署名付きURLキャッシュで共有するキー
// 形式: {bucket}/{path}
func (r ObjectRef) CacheKey() string {
	return r.bucket.String() + "/" + r.path.String()
}

func (r ObjectRef) String() string {
	return r.CacheKey()
}
