package domain

import (
	"errors"
	"strings"
)

// StoragePath はバケット内でオブジェクトを一意に識別するパス
// アップロード後に内容が変わらないため、キャッシュの永続的な識別子として使う
type StoragePath struct {
	value string
}

var ErrInvalidStoragePath = errors.New("invalid storage path")

func NewStoragePath(value string) (StoragePath, error) {
	if value == "" {
		return StoragePath{}, ErrInvalidStoragePath
	}
	if strings.HasPrefix(value, "/") || strings.Contains(value, `\`) {
		return StoragePath{}, ErrInvalidStoragePath
	}
	for _, segment := range strings.Split(value, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return StoragePath{}, ErrInvalidStoragePath
		}
	}

	return StoragePath{value: value}, nil
}

func (p StoragePath) String() string {
	return p.value
}
