package domain

// PowerKind はPowerの種別です。
type PowerKind uint8

const (
	PowerUnknown PowerKind = iota
	PowerInvisibility
	PowerFlight
)

var powerNames = map[PowerKind]string{
	PowerInvisibility: "invisibility",
	PowerFlight:       "flight",
}

func (k PowerKind) String() string {
	if name, ok := powerNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParsePowerKind は名前からPowerKindを引きます。未知の名前ならfalseを返します。
func ParsePowerKind(name string) (PowerKind, bool) {
	for kind, n := range powerNames {
		if n == name {
			return kind, true
		}
	}
	return PowerUnknown, false
}

// Power はプレイヤーが所有し、一定時間Statsを書き換える能力です。
//
// Activate は常にActiveをtrueにして効果を適用し、解除をschedulerに一度だけ登録します。
// 発動中かどうかの確認は呼び出し側の責務です。
type Power interface {
	Kind() PowerKind
	Name() string
	Active() bool
	Activate(stats *Stats, scheduler Scheduler)
}
