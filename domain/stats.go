package domain

// Visibility はプレイヤーの可視状態です。Hidden(0) か Visible(1) のどちらかを取ります。
type Visibility uint8

const (
	Hidden  Visibility = 0
	Visible Visibility = 1
)

// DefaultHealth は上書きがない場合の初期体力です。
const DefaultHealth = 5

// Stats はプレイヤーの可変な状態を保持するレコードです。
// 書き換えるのは所有するPlayerと、効果中のPowerだけです。
// Healthに下限・上限はありません。
type Stats struct {
	Health     int
	Visibility Visibility
	Flying     bool
}

// DefaultStats は新規プレイヤーの初期値 {5, Visible, false} を返します。
func DefaultStats() Stats {
	return Stats{
		Health:     DefaultHealth,
		Visibility: Visible,
		Flying:     false,
	}
}

// Conditions は現在のStatsを状態フラグに変換します。
func (s Stats) Conditions() Condition {
	var c Condition
	if s.Visibility == Hidden {
		c |= ConditionHidden
	}
	if s.Flying {
		c |= ConditionFlying
	}
	return c
}

// StatsOverride は初期値に重ねる部分的なStatsです。
// nilのフィールドは初期値のまま残ります。
type StatsOverride struct {
	Health     *int
	Visibility *Visibility
	Flying     *bool
}

// Apply はbaseにoverrideを重ねた新しいStatsを返します。
func (o StatsOverride) Apply(base Stats) Stats {
	if o.Health != nil {
		base.Health = *o.Health
	}
	if o.Visibility != nil {
		base.Visibility = *o.Visibility
	}
	if o.Flying != nil {
		base.Flying = *o.Flying
	}
	return base
}
