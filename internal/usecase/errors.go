package usecase

import "errors"

var (
	// ErrSigningFailure は署名付きURLの発行に失敗した場合のエラー
	ErrSigningFailure = errors.New("failed to mint signed url")

	// ErrFetchFailure は画像のダウンロードに失敗した場合のエラー
	ErrFetchFailure = errors.New("failed to fetch image bytes")

	// ErrDecodeFailure はダウンロードしたバイト列が画像として不正な場合のエラー
	ErrDecodeFailure = errors.New("failed to decode image")
)
