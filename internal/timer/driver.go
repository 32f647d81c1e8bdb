package timer

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval はintervalが指定されなかった場合の駆動間隔です。
const DefaultInterval = time.Second / 60

// Stepper は1ステップ分の処理を進める対象です。
type Stepper interface {
	Step(ctx context.Context)
}

// StepperFunc は関数をStepperとして扱うためのアダプタです。
type StepperFunc func(ctx context.Context)

func (f StepperFunc) Step(ctx context.Context) { f(ctx) }

// Driver は実時間のinterval間隔でStepperを駆動します。
type Driver struct {
	interval time.Duration
	stepper  Stepper
}

// NewDriver は新しいDriverを生成します。intervalが0以下ならDefaultIntervalを使います。
func NewDriver(interval time.Duration, stepper Stepper) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		interval: interval,
		stepper:  stepper,
	}
}

// Run はinterval間隔でStepを呼び出します。
// ctxがキャンセルされると終了します。
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.stepper.Step(ctx)
		}
	}
}

// Advancer はStepごとにqを仮想時間stepだけ進めるStepperを返します。
func Advancer(q *Queue, step time.Duration) Stepper {
	return StepperFunc(func(ctx context.Context) {
		if fired := q.Advance(step); fired > 0 {
			slog.DebugContext(ctx, "timer: callbacks fired", "count", fired, "now", q.Now())
		}
	})
}
