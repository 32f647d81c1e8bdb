package domain

import "fmt"

// Condition はStatsから導出されるプレイヤーの状態フラグです。
type Condition uint8

const (
	ConditionNone   Condition = 0
	ConditionHidden Condition = 1 << 0
	ConditionFlying Condition = 1 << 1
)

func (c Condition) Has(x Condition) bool { return c&x != 0 }

func (c Condition) String() string {
	if c == ConditionNone {
		return "none"
	}
	out := ""
	add := func(s string) {
		if out == "" {
			out = s
			return
		}
		out += "|" + s
	}
	if c.Has(ConditionHidden) {
		add("hidden")
	}
	if c.Has(ConditionFlying) {
		add("flying")
	}
	if out == "" {
		return fmt.Sprintf("unknown(%d)", c)
	}
	return out
}
