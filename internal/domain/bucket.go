package domain

import (
	"errors"
	"regexp"
)

// DefaultBucket は食事写真を格納するバケット
const DefaultBucket = "meal-photos"

type Bucket struct {
	value string
}

var (
	ErrInvalidBucket = errors.New("invalid bucket name")
	bucketPattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
)

func NewBucket(value string) (Bucket, error) {
	if !bucketPattern.MatchString(value) {
		return Bucket{}, ErrInvalidBucket
	}

	return Bucket{value: value}, nil
}

// NewBucketOrDefault は空文字列の場合にDefaultBucketを返す
func NewBucketOrDefault(value string) (Bucket, error) {
	if value == "" {
		return Bucket{value: DefaultBucket}, nil
	}
	return NewBucket(value)
}

func (b Bucket) String() string {
	return b.value
}
