package domain

// ItemKind はインベントリアイテムの種別です。
type ItemKind uint8

const (
	ItemUnknown ItemKind = iota
	ItemHealing
)

func (k ItemKind) String() string {
	switch k {
	case ItemHealing:
		return "healing"
	default:
		return "unknown"
	}
}

// InventoryItem は使用回数に上限のある消耗品です。
// Use は残量があれば1つ消費して回復量を返し、残量がなければ0を返します。
type InventoryItem interface {
	Kind() ItemKind
	Amount() int
	Use() int
}

// ItemSnapshot はインベントリ内アイテムの読み取り専用の写しです。
type ItemSnapshot struct {
	Kind   ItemKind
	Amount int
}
