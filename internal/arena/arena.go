package arena

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"powerplay/application"
	"powerplay/domain"
	"powerplay/internal/timer"
)

var (
	ErrArenaBusy       = errors.New("arena command queue is full")
	ErrDuplicatePlayer = errors.New("player already joined the arena")
	ErrNilPlayer       = errors.New("player is nil")
)

const defaultQueueSize = 1024

// Config はアリーナの動作設定です。
type Config struct {
	TickInterval time.Duration // 1tickで進める仮想時間と実時間の間隔。0ならtimer.DefaultInterval
	QueueSize    int           // コマンドキューの容量。0ならdefaultQueueSize
}

// Arena は複数のプレイヤーを1つのループで動かすシミュレーションドライバです。
// コマンドの実行とPower解除の発火はすべてStepの中で直列に行われます。
type Arena struct {
	mu      sync.RWMutex
	players map[domain.PlayerID]*application.Player

	clock *timer.Queue
	cmdCh chan Command

	tickInterval time.Duration
}

// PlayerState はSnapshotが返すプレイヤーの状態です。
type PlayerState struct {
	ID         domain.PlayerID
	Name       string
	Health     int
	Conditions domain.Condition
	Powers     []string
}

func New(cfg Config) *Arena {
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = timer.DefaultInterval
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Arena{
		players:      make(map[domain.PlayerID]*application.Player),
		clock:        timer.NewQueue(),
		cmdCh:        make(chan Command, size),
		tickInterval: tick,
	}
}

// Scheduler はアリーナの仮想時計を返します。プレイヤー生成時にWithSchedulerへ渡します。
func (a *Arena) Scheduler() domain.Scheduler {
	return a.clock
}

// Now はアリーナ開始からの仮想経過時間を返します。
func (a *Arena) Now() time.Duration {
	return a.clock.Now()
}

func (a *Arena) TickInterval() time.Duration {
	return a.tickInterval
}

// Join はプレイヤーをアリーナに登録します。
func (a *Arena) Join(p *application.Player) error {
	if p == nil {
		return ErrNilPlayer
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.players[p.ID()]; exists {
		return ErrDuplicatePlayer
	}
	a.players[p.ID()] = p
	return nil
}

func (a *Arena) Player(id domain.PlayerID) (*application.Player, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	p, ok := a.players[id]
	return p, ok
}

// Submit はコマンドを次のStepで実行するようキューに積みます。
// キューが満杯ならErrArenaBusyを返し、ブロックしません。
func (a *Arena) Submit(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case a.cmdCh <- cmd:
		return nil
	default:
		return ErrArenaBusy
	}
}

// Step は積まれたコマンドをすべて実行し、仮想時間を1tick進めます。
func (a *Arena) Step(ctx context.Context) {
CMD_LOOP:
	for {
		select {
		case cmd := <-a.cmdCh:
			a.apply(ctx, cmd)
		default:
			break CMD_LOOP
		}
	}
	if fired := a.clock.Advance(a.tickInterval); fired > 0 {
		slog.DebugContext(ctx, "arena: power effects expired", "count", fired, "now", a.clock.Now())
	}
}

// Run はtick間隔でStepを呼び出します。ctxがキャンセルされると終了します。
func (a *Arena) Run(ctx context.Context) error {
	timer.NewDriver(a.tickInterval, a).Run(ctx)
	return nil
}

// Snapshot は全プレイヤーの状態を名前順で返します。
func (a *Arena) Snapshot() []PlayerState {
	a.mu.RLock()
	states := make([]PlayerState, 0, len(a.players))
	for _, p := range a.players {
		stats := p.Stats()
		states = append(states, PlayerState{
			ID:         p.ID(),
			Name:       p.Name(),
			Health:     stats.Health,
			Conditions: stats.Conditions(),
			Powers:     p.Powers(),
		})
	}
	a.mu.RUnlock()

	slices.SortFunc(states, func(x, y PlayerState) int {
		if c := cmp.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})
	return states
}

func (a *Arena) apply(ctx context.Context, cmd Command) {
	actor, ok := a.Player(cmd.Actor)
	if !ok {
		slog.WarnContext(ctx, "arena: actor not found", "command", cmd.Kind, "actorID", cmd.Actor)
		return
	}

	switch cmd.Kind {
	case CommandAttack:
		target, ok := a.Player(cmd.Target)
		if !ok {
			slog.WarnContext(ctx, "arena: target not found", "actorID", cmd.Actor, "targetID", cmd.Target)
			return
		}
		actor.Attack(target)
		slog.DebugContext(ctx, "arena: attack", "actor", actor.Name(), "target", target.Name(), "targetHealth", target.Health())
	case CommandHeal:
		actor.Heal()
		slog.DebugContext(ctx, "arena: heal", "actor", actor.Name(), "health", actor.Health())
	case CommandActivate:
		actor.Activate(ctx, cmd.Power)
	default:
		slog.WarnContext(ctx, "arena: unknown command", "command", cmd.Kind)
	}
}
