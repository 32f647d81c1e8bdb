package domain

import (
	"testing"
)

func TestCondition_String(t *testing.T) {
	tests := []struct {
		c    Condition
		want string
	}{
		{ConditionNone, "none"},
		{ConditionHidden, "hidden"},
		{ConditionFlying, "flying"},
		{ConditionHidden | ConditionFlying, "hidden|flying"},
		{Condition(1 << 5), "unknown(32)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Condition(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

// TestDefaultStats は初期値が {5, Visible, false} であることを確認します。
func TestDefaultStats(t *testing.T) {
	s := DefaultStats()

	if s.Health != 5 {
		t.Errorf("Health = %d, want 5", s.Health)
	}
	if s.Visibility != Visible {
		t.Errorf("Visibility = %d, want %d", s.Visibility, Visible)
	}
	if s.Flying {
		t.Errorf("Flying = true, want false")
	}
	if s.Conditions() != ConditionNone {
		t.Errorf("Conditions = %s, want none", s.Conditions())
	}
}

func TestStats_Conditions(t *testing.T) {
	s := Stats{Health: 1, Visibility: Hidden, Flying: true}

	c := s.Conditions()
	if !c.Has(ConditionHidden) || !c.Has(ConditionFlying) {
		t.Errorf("Conditions = %s, want hidden|flying", c)
	}
}

func TestStatsOverride_Apply(t *testing.T) {
	health := 999
	flying := true

	got := StatsOverride{Health: &health, Flying: &flying}.Apply(DefaultStats())

	want := Stats{Health: 999, Visibility: Visible, Flying: true}
	if got != want {
		t.Errorf("Apply = %+v, want %+v", got, want)
	}
}

func TestStatsOverride_ApplyEmptyKeepsBase(t *testing.T) {
	base := Stats{Health: -3, Visibility: Hidden}

	if got := (StatsOverride{}).Apply(base); got != base {
		t.Errorf("Apply = %+v, want %+v", got, base)
	}
}

func TestParsePowerKind(t *testing.T) {
	for _, kind := range []PowerKind{PowerInvisibility, PowerFlight} {
		got, ok := ParsePowerKind(kind.String())
		if !ok || got != kind {
			t.Errorf("ParsePowerKind(%q) = (%v, %v), want (%v, true)", kind.String(), got, ok, kind)
		}
	}

	if _, ok := ParsePowerKind("teleport"); ok {
		t.Error("ParsePowerKind(teleport) should fail")
	}
}

func TestActivationEvent_Message(t *testing.T) {
	ev := ActivationEvent{Kind: PowerFlight, Power: PowerFlight.String()}

	if got := ev.Message(); got != "flight activated" {
		t.Errorf("Message = %q, want %q", got, "flight activated")
	}
}

func TestNewPlayerID_Unique(t *testing.T) {
	a, b := NewPlayerID(), NewPlayerID()

	if a == "" || b == "" {
		t.Fatal("player id is empty")
	}
	if a == b {
		t.Errorf("ids should differ: %s", a)
	}
}

func TestItemKind_String(t *testing.T) {
	if got := ItemHealing.String(); got != "healing" {
		t.Errorf("ItemHealing.String() = %q, want healing", got)
	}
	if got := ItemUnknown.String(); got != "unknown" {
		t.Errorf("ItemUnknown.String() = %q, want unknown", got)
	}
}
