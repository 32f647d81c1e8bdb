package application

import (
	"time"

	"powerplay/domain"
)

const (
	presetPotionCapacity = 3
	godPotionCapacity    = 999
	godHealth            = 999
)

// Roster はよく使うプレイヤー構成を生成するファクトリです。
// 呼び出しごとに新しいPowerとアイテムを組み立てるため、プレイヤー間で共有されることはありません。
type Roster struct {
	FlightDuration time.Duration // 0ならDefaultFlightDuration
	Options        []Option      // 生成するすべてのプレイヤーに適用する
}

// Witch はFlightと3回分のHealingPotionを持つプレイヤーを生成します。
func (r Roster) Witch(name string, opts ...Option) *Player {
	return NewPlayer(name,
		[]domain.Power{NewFlight(r.FlightDuration)},
		[]domain.InventoryItem{NewHealingPotion(presetPotionCapacity)},
		r.options(opts)...,
	)
}

// Thief はInvisibilityと3回分のHealingPotionを持つプレイヤーを生成します。
func (r Roster) Thief(name string, opts ...Option) *Player {
	return NewPlayer(name,
		[]domain.Power{NewInvisibility()},
		[]domain.InventoryItem{NewHealingPotion(presetPotionCapacity)},
		r.options(opts)...,
	)
}

// God は両方のPowerと999回分のHealingPotion、体力999を持つプレイヤーを生成します。
func (r Roster) God(name string, opts ...Option) *Player {
	base := []Option{WithHealth(godHealth)}
	return NewPlayer(name,
		[]domain.Power{NewInvisibility(), NewFlight(r.FlightDuration)},
		[]domain.InventoryItem{NewHealingPotion(godPotionCapacity)},
		append(base, r.options(opts)...)...,
	)
}

func (r Roster) options(opts []Option) []Option {
	out := make([]Option, 0, len(r.Options)+len(opts))
	out = append(out, r.Options...)
	return append(out, opts...)
}

// Witch は既定のRosterでWitchを生成します。
func Witch(name string, opts ...Option) *Player { return Roster{}.Witch(name, opts...) }

// Thief は既定のRosterでThiefを生成します。
func Thief(name string, opts ...Option) *Player { return Roster{}.Thief(name, opts...) }

// God は既定のRosterでGodを生成します。
func God(name string, opts ...Option) *Player { return Roster{}.God(name, opts...) }
