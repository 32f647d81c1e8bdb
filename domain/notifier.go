package domain

import "context"

//go:generate go tool mockgen -destination=./mocks/notifier_mock.go -package=mocks . Notifier

// ActivationEvent はPowerの発動に成功したことを表すイベントです。
type ActivationEvent struct {
	PlayerID PlayerID
	Player   string
	Kind     PowerKind
	Power    string
}

// Message は "<power-name> activated" 形式の通知文を返します。
func (e ActivationEvent) Message() string {
	return e.Power + " activated"
}

// Notifier はPower発動の通知先です。
type Notifier interface {
	PowerActivated(ctx context.Context, ev ActivationEvent)
}
