package application

import (
	"context"
	"sync"
	"time"

	"powerplay/domain"
	"powerplay/internal/timer"
)

// Player はStats・Power・InventoryItemを合成した集約です。
// Powerとアイテムは外部から注入され、Playerはそれらを所有して委譲します。
type Player struct {
	mu sync.Mutex

	id        domain.PlayerID
	name      string
	stats     domain.Stats
	powers    map[domain.PowerKind]domain.Power
	order     []domain.PowerKind // Powersの列挙順。最初に登録された順
	inventory []domain.InventoryItem

	scheduler domain.Scheduler
	notifier  domain.Notifier
}

// Option はPlayer生成時の任意設定です。
type Option func(*playerOptions)

type playerOptions struct {
	id        domain.PlayerID
	override  domain.StatsOverride
	scheduler domain.Scheduler
	notifier  domain.Notifier
}

// WithID はプレイヤーIDを指定します。省略時はUUIDを採番します。
func WithID(id domain.PlayerID) Option {
	return func(o *playerOptions) { o.id = id }
}

// WithStats は初期Statsに部分的な上書きを重ねます。
func WithStats(override domain.StatsOverride) Option {
	return func(o *playerOptions) {
		if override.Health != nil {
			o.override.Health = override.Health
		}
		if override.Visibility != nil {
			o.override.Visibility = override.Visibility
		}
		if override.Flying != nil {
			o.override.Flying = override.Flying
		}
	}
}

// WithHealth は初期体力を上書きします。
func WithHealth(health int) Option {
	return func(o *playerOptions) { o.override.Health = &health }
}

// WithScheduler はPower解除の登録先を指定します。省略時は実時間のtimer.Wallです。
func WithScheduler(s domain.Scheduler) Option {
	return func(o *playerOptions) { o.scheduler = s }
}

// WithNotifier は発動通知の送信先を指定します。省略時はslogに出力します。
func WithNotifier(n domain.Notifier) Option {
	return func(o *playerOptions) { o.notifier = n }
}

// NewPlayer は名前・Power・インベントリを注入してPlayerを生成します。
// 同じ種別のPowerが複数渡された場合は後のものが有効になります。
func NewPlayer(name string, powers []domain.Power, inventory []domain.InventoryItem, opts ...Option) *Player {
	o := playerOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = domain.NewPlayerID()
	}
	if o.scheduler == nil {
		o.scheduler = timer.Wall{}
	}
	if o.notifier == nil {
		o.notifier = NewLogNotifier(nil)
	}

	p := &Player{
		id:        o.id,
		name:      name,
		stats:     o.override.Apply(domain.DefaultStats()),
		powers:    make(map[domain.PowerKind]domain.Power, len(powers)),
		inventory: make([]domain.InventoryItem, 0, len(inventory)),
		scheduler: o.scheduler,
		notifier:  o.notifier,
	}
	for _, power := range powers {
		p.register(power)
	}
	for _, item := range inventory {
		if item != nil {
			p.inventory = append(p.inventory, item)
		}
	}
	return p
}

func (p *Player) ID() domain.PlayerID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Health() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats.Health
}

// Stats は現在のStatsの写しを返します。写しを変更してもPlayerには影響しません。
func (p *Player) Stats() domain.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *Player) Conditions() domain.Condition {
	return p.Stats().Conditions()
}

// Powers は登録済みPowerの名前を登録順に返します。
func (p *Player) Powers() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.order))
	for _, kind := range p.order {
		names = append(names, p.powers[kind].Name())
	}
	return names
}

// Inventory はインベントリの写しを格納順に返します。
func (p *Player) Inventory() []domain.ItemSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	items := make([]domain.ItemSnapshot, 0, len(p.inventory))
	for _, item := range p.inventory {
		items = append(items, domain.ItemSnapshot{Kind: item.Kind(), Amount: item.Amount()})
	}
	return items
}

// Attack はopponentに1ダメージを与えます。自分自身も対象にできます。
func (p *Player) Attack(opponent *Player) {
	if opponent == nil {
		return
	}
	opponent.DealDamage()
}

// DealDamage は体力を1減らします。下限はありません。
func (p *Player) DealDamage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats.Health--
}

// Heal はインベントリを格納順に走査し、残量のある最初の回復アイテムを1回使います。
// 該当するアイテムがなければ何もしません。
func (p *Player) Heal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range p.inventory {
		if item.Kind() == domain.ItemHealing && item.Amount() > 0 {
			p.stats.Health += item.Use()
			return
		}
	}
}

// Activate はkindのPowerを発動し、通知を送ります。
// 未登録または発動中の場合は何もしません。
func (p *Player) Activate(ctx context.Context, kind domain.PowerKind) {
	p.mu.Lock()
	power, ok := p.powers[kind]
	if !ok || power.Active() {
		p.mu.Unlock()
		return
	}
	power.Activate(&p.stats, guardedScheduler{p: p})
	ev := domain.ActivationEvent{
		PlayerID: p.id,
		Player:   p.name,
		Kind:     kind,
		Power:    power.Name(),
	}
	p.mu.Unlock()

	p.notifier.PowerActivated(ctx, ev)
}

// ActivateByName は名前で指定されたPowerを発動します。未知の名前は無視します。
func (p *Player) ActivateByName(ctx context.Context, name string) {
	kind, ok := domain.ParsePowerKind(name)
	if !ok {
		return
	}
	p.Activate(ctx, kind)
}

// Learn はPowerを後から習得させます。同じ種別は置き換えますが、列挙順は最初の位置のままです。
func (p *Player) Learn(power domain.Power) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.register(power)
}

// Pick はアイテムをインベントリの末尾に追加します。
func (p *Player) Pick(item domain.InventoryItem) {
	if item == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inventory = append(p.inventory, item)
}

func (p *Player) register(power domain.Power) {
	if power == nil {
		return
	}
	kind := power.Kind()
	if _, exists := p.powers[kind]; !exists {
		p.order = append(p.order, kind)
	}
	p.powers[kind] = power
}

// guardedScheduler はPowerの解除コールバックをPlayerのロック下で実行します。
// Statsへの書き込みはすべてp.muで直列化されます。
type guardedScheduler struct {
	p *Player
}

func (g guardedScheduler) After(delay time.Duration, fn func()) domain.TimerHandle {
	return g.p.scheduler.After(delay, func() {
		g.p.mu.Lock()
		defer g.p.mu.Unlock()
		fn()
	})
}
