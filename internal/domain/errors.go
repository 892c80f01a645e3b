package domain

import "errors"

var (
	// ErrObjectNotFound はリモートストアにオブジェクトが存在しない場合のエラー
	ErrObjectNotFound = errors.New("object not found")

	// ErrAccessDenied はバケットポリシーによりアクセスが拒否された場合のエラー
	ErrAccessDenied = errors.New("access denied")

	// ErrCacheMiss はキャッシュにエントリが存在しない場合のエラー
	ErrCacheMiss = errors.New("cache miss")
)
