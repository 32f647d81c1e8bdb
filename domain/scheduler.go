package domain

import "time"

//go:generate go tool mockgen -destination=./mocks/scheduler_mock.go -package=mocks . Scheduler

// Scheduler は一度だけ実行される遅延コールバックを登録する境界です。
// Powerは効果の解除をこのSchedulerに委ねます。
type Scheduler interface {
	// After はdelay経過後にfnを一度だけ実行するよう登録します。
	After(delay time.Duration, fn func()) TimerHandle
}

// TimerHandle は登録済みコールバックの取り消しトークンです。
type TimerHandle interface {
	// Stop は未実行のコールバックを取り消し、取り消せた場合にtrueを返します。
	Stop() bool
}
