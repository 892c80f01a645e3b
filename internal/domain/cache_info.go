package domain

// CacheInfo は診断用のキャッシュ統計
type CacheInfo struct {
	MemoryImageCount   int   `json:"memoryImageCount"`
	MemoryBytes        int64 `json:"memoryBytes"`
	DiskCacheSizeBytes int64 `json:"diskCacheSizeBytes"`
	DiskEntryCount     int   `json:"diskEntryCount"`
	SignedURLCount     int   `json:"signedURLCount"`
}
