package application

import "powerplay/domain"

// HealingRestore はHealingPotion 1回分の回復量です。
const HealingRestore = 1

// HealingPotion は使用回数付きの回復アイテムです。
type HealingPotion struct {
	amount int
}

var _ domain.InventoryItem = (*HealingPotion)(nil)

// NewHealingPotion はcapacity回使えるHealingPotionを生成します。負の値は0になります。
func NewHealingPotion(capacity int) *HealingPotion {
	return &HealingPotion{amount: max(capacity, 0)}
}

func (h *HealingPotion) Kind() domain.ItemKind { return domain.ItemHealing }
func (h *HealingPotion) Amount() int           { return h.amount }

func (h *HealingPotion) Use() int {
	if h.amount > 0 {
		h.amount--
		return HealingRestore
	}
	return 0
}
