package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultHealthCheckTimeout = 3 * time.Second

type ReadinessStatus string

const (
	StatusReady ReadinessStatus = "ready"
	// StatusDegraded はキャッシュ層の一部が使えないが、リモートストアから画像を返せる状態
	StatusDegraded ReadinessStatus = "degraded"
	StatusNotReady ReadinessStatus = "not_ready"
)

// requiredComponents は失敗するとトラフィックを受けられない依存先
// 署名付きURLキャッシュとディスクキャッシュの失敗は取得処理の中で吸収される
var requiredComponents = map[Component]bool{
	ComponentObjectStore: true,
}

type ComponentReport struct {
	Component Component
	Backend   string
	Healthy   bool
	Required  bool
	Latency   time.Duration
	Error     error
}

type ReadinessReport struct {
	Status     ReadinessStatus
	Components []ComponentReport
}

// ReadinessUseCase はリモートストアや共有キャッシュへの疎通を確認する
type ReadinessUseCase struct {
	checkers []HealthChecker
	timeout  time.Duration
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers: checkers,
		timeout:  DefaultHealthCheckTimeout,
	}
}

// Report は各チェッカーを並行に実行する。Components の順序は登録順
func (uc *ReadinessUseCase) Report(ctx context.Context) ReadinessReport {
	components := make([]ComponentReport, len(uc.checkers))

	var g errgroup.Group
	for i, checker := range uc.checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, uc.timeout)
			defer cancel()

			started := time.Now()
			err := checker.Check(checkCtx)
			components[i] = ComponentReport{
				Component: checker.Component(),
				Backend:   checker.Backend(),
				Healthy:   err == nil,
				Required:  requiredComponents[checker.Component()],
				Latency:   time.Since(started),
				Error:     err,
			}
			return nil
		})
	}
	_ = g.Wait()

	status := StatusReady
	for _, c := range components {
		if c.Healthy {
			continue
		}
		if c.Required {
			status = StatusNotReady
			break
		}
		status = StatusDegraded
	}

	return ReadinessReport{Status: status, Components: components}
}
