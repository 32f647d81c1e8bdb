package application

import (
	"time"

	"powerplay/domain"
)

const (
	InvisibilityDuration  = 5 * time.Second
	DefaultFlightDuration = 5 * time.Second
)

// Invisibility は発動中Visibilityを0にするPowerです。
type Invisibility struct {
	active bool
}

var _ domain.Power = (*Invisibility)(nil)

func NewInvisibility() *Invisibility {
	return &Invisibility{}
}

func (i *Invisibility) Kind() domain.PowerKind { return domain.PowerInvisibility }
func (i *Invisibility) Name() string           { return domain.PowerInvisibility.String() }
func (i *Invisibility) Active() bool           { return i.active }

// Activate は姿を消し、InvisibilityDuration後に元へ戻します。解除は取り消せません。
func (i *Invisibility) Activate(stats *domain.Stats, scheduler domain.Scheduler) {
	i.active = true
	stats.Visibility = domain.Hidden

	scheduler.After(InvisibilityDuration, func() {
		i.active = false
		stats.Visibility = domain.Visible
	})
}

// Flight は発動中FlyingをtrueにするPowerです。持続時間は生成時に決まります。
type Flight struct {
	active   bool
	duration time.Duration
}

var _ domain.Power = (*Flight)(nil)

// NewFlight はFlightを生成します。durationが0以下ならDefaultFlightDurationを使います。
func NewFlight(duration time.Duration) *Flight {
	if duration <= 0 {
		duration = DefaultFlightDuration
	}
	return &Flight{duration: duration}
}

func (f *Flight) Kind() domain.PowerKind  { return domain.PowerFlight }
func (f *Flight) Name() string            { return domain.PowerFlight.String() }
func (f *Flight) Active() bool            { return f.active }
func (f *Flight) Duration() time.Duration { return f.duration }

func (f *Flight) Activate(stats *domain.Stats, scheduler domain.Scheduler) {
	f.active = true
	stats.Flying = true

	scheduler.After(f.duration, func() {
		f.active = false
		stats.Flying = false
	})
}
