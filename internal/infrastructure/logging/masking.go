package logging

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var defaultSensitiveKeys = []string{
	"token",
	"service_token",
	"authorization",
	"password",
	"secret",
	"jwt_secret",
	"secret_access_key",
	"secretaccesskey",
	"access_key_id",
	"accesskeyid",
	"api_key",
	"apikey",
	"credential",
	"signature",
}

// signedQueryPattern は署名付きURLのクエリに含まれる認証情報
var signedQueryPattern = regexp.MustCompile(`(?i)\b(X-Amz-Signature|X-Amz-Credential|X-Amz-Security-Token|token)=[^&\s"']+`)

type SensitiveMasker struct {
	sensitiveKeys map[string]bool
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	m := make(map[string]bool, len(keys))
	for _, key := range keys {
		m[key] = true
	}
	return &SensitiveMasker{sensitiveKeys: m}
}

func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			maskedAttrs = append(maskedAttrs, sm.MaskAttrs(nil, attr))
		}
		return slog.Group(a.Key, maskedAttrs...)
	}

	key := strings.ToLower(a.Key)
	for sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return slog.String(a.Key, redacted)
		}
	}

	switch a.Value.Kind() {
	case slog.KindString:
		if s := a.Value.String(); signedQueryPattern.MatchString(s) {
			return slog.String(a.Key, MaskSignedURL(s))
		}
	case slog.KindAny:
		// net/http のエラーは署名付きURLをそのまま含む
		if err, ok := a.Value.Any().(error); ok && err != nil {
			if s := err.Error(); signedQueryPattern.MatchString(s) {
				return slog.String(a.Key, MaskSignedURL(s))
			}
		}
	}

	return a
}

// MaskSignedURL は文字列中の署名付きURLの認証クエリを伏せる
func MaskSignedURL(s string) string {
	return signedQueryPattern.ReplaceAllString(s, "${1}="+redacted)
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}

// NewLogger はマスキング付きのJSONロガーを生成する
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: MaskSensitiveAttrs,
	}))
}

// ParseLevel は設定値のログレベルを解釈する。不明な値はInfoとして扱う
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
