package application

import (
	"context"
	"log/slog"

	"powerplay/domain"
)

// LogNotifier は発動通知をslogに出力するNotifierです。
type LogNotifier struct {
	logger *slog.Logger
}

var _ domain.Notifier = (*LogNotifier)(nil)

// NewLogNotifier はloggerに出力するLogNotifierを生成します。nilなら呼び出し時点のslog.Default()を使います。
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) PowerActivated(ctx context.Context, ev domain.ActivationEvent) {
	logger := n.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, ev.Message(),
		"playerID", ev.PlayerID,
		"player", ev.Player,
	)
}
