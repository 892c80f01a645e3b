//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_cache_maintenance.go -package=usecase
package usecase

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultSignedURLSweepInterval = 5 * time.Minute
	DefaultDiskSweepInterval      = 60 * time.Minute
)

// CacheSweeper は定期メンテナンスの対象
type CacheSweeper interface {
	ClearExpired(ctx context.Context) (int, error)
	SweepDisk(ctx context.Context) (int, error)
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t *timeTicker) C() <-chan time.Time {
	return t.t.C
}

func (t *timeTicker) Stop() {
	t.t.Stop()
}

func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(d)}
}

// CacheMaintenance は期限切れ署名付きURLの削除とディスクキャッシュの掃除を定期実行する
type CacheMaintenance struct {
	sweeper                CacheSweeper
	signedURLSweepInterval time.Duration
	diskSweepInterval      time.Duration
	newTicker              TickerFactory
}

func NewCacheMaintenance(sweeper CacheSweeper, signedURLSweepInterval, diskSweepInterval time.Duration) *CacheMaintenance {
	return NewCacheMaintenanceWithTicker(sweeper, signedURLSweepInterval, diskSweepInterval, nil)
}

func NewCacheMaintenanceWithTicker(sweeper CacheSweeper, signedURLSweepInterval, diskSweepInterval time.Duration, factory TickerFactory) *CacheMaintenance {
	if signedURLSweepInterval <= 0 {
		signedURLSweepInterval = DefaultSignedURLSweepInterval
	}
	if diskSweepInterval <= 0 {
		diskSweepInterval = DefaultDiskSweepInterval
	}
	if factory == nil {
		factory = NewTimeTicker
	}
	return &CacheMaintenance{
		sweeper:                sweeper,
		signedURLSweepInterval: signedURLSweepInterval,
		diskSweepInterval:      diskSweepInterval,
		newTicker:              factory,
	}
}

// Run はctxがキャンセルされるまでブロックする
func (m *CacheMaintenance) Run(ctx context.Context) {
	signedURLTicker := m.newTicker(m.signedURLSweepInterval)
	defer signedURLTicker.Stop()
	diskTicker := m.newTicker(m.diskSweepInterval)
	defer diskTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-signedURLTicker.C():
			removed, err := m.sweeper.ClearExpired(ctx)
			if err != nil {
				slog.WarnContext(ctx, "期限切れ署名付きURLの削除に失敗しました", "error", err)
				continue
			}
			if removed > 0 {
				slog.InfoContext(ctx, "期限切れ署名付きURLを削除しました", "removed", removed)
			}
		case <-diskTicker.C():
			removed, err := m.sweeper.SweepDisk(ctx)
			if err != nil {
				slog.WarnContext(ctx, "ディスクキャッシュの掃除に失敗しました", "error", err)
				continue
			}
			if removed > 0 {
				slog.InfoContext(ctx, "古いディスクキャッシュを削除しました", "removed", removed)
			}
		}
	}
}
