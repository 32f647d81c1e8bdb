package timer

import (
	"time"

	"powerplay/domain"
)

// Wall は実時間で動くSchedulerです。コールバックは別goroutineから呼ばれます。
type Wall struct{}

var _ domain.Scheduler = Wall{}

func (Wall) After(delay time.Duration, fn func()) domain.TimerHandle {
	return time.AfterFunc(delay, fn)
}
