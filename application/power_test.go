package application

import (
	"testing"
	"time"

	"powerplay/domain"
	"powerplay/internal/timer"
)

func TestInvisibility_Activate(t *testing.T) {
	q := timer.NewQueue()
	stats := domain.DefaultStats()
	inv := NewInvisibility()

	if inv.Name() != "invisibility" || inv.Kind() != domain.PowerInvisibility {
		t.Fatalf("unexpected identity: %s/%v", inv.Name(), inv.Kind())
	}

	inv.Activate(&stats, q)

	if !inv.Active() || stats.Visibility != domain.Hidden {
		t.Fatal("invisibility should hide immediately")
	}

	q.Advance(InvisibilityDuration)
	if inv.Active() || stats.Visibility != domain.Visible {
		t.Error("invisibility should end after 5s")
	}
}

// TestInvisibility_ActivateTwiceSchedulesTwice はPower自身に再入ガードがないことを確認します。
func TestInvisibility_ActivateTwiceSchedulesTwice(t *testing.T) {
	q := timer.NewQueue()
	stats := domain.DefaultStats()
	inv := NewInvisibility()

	inv.Activate(&stats, q)
	inv.Activate(&stats, q)

	if q.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", q.Pending())
	}
}

func TestFlight_DefaultDuration(t *testing.T) {
	if d := NewFlight(0).Duration(); d != DefaultFlightDuration {
		t.Errorf("Duration = %v, want %v", d, DefaultFlightDuration)
	}
	if d := NewFlight(-time.Second).Duration(); d != DefaultFlightDuration {
		t.Errorf("negative Duration = %v, want %v", d, DefaultFlightDuration)
	}
}

func TestFlight_CustomDuration(t *testing.T) {
	q := timer.NewQueue()
	stats := domain.DefaultStats()
	f := NewFlight(2 * time.Second)

	f.Activate(&stats, q)
	if !stats.Flying || !f.Active() {
		t.Fatal("flight should start immediately")
	}

	q.Advance(time.Second)
	if !stats.Flying {
		t.Fatal("flight ended too early")
	}

	q.Advance(time.Second)
	if stats.Flying || f.Active() {
		t.Error("flight should end after 2s")
	}
}

func TestHealingPotion_Use(t *testing.T) {
	h := NewHealingPotion(2)

	if h.Kind() != domain.ItemHealing {
		t.Fatalf("Kind = %v, want healing", h.Kind())
	}
	if got := h.Use(); got != 1 {
		t.Errorf("first Use = %d, want 1", got)
	}
	if got := h.Use(); got != 1 {
		t.Errorf("second Use = %d, want 1", got)
	}
	if got := h.Use(); got != 0 {
		t.Errorf("exhausted Use = %d, want 0", got)
	}
	if h.Amount() != 0 {
		t.Errorf("Amount = %d, want 0", h.Amount())
	}
}

func TestHealingPotion_NegativeCapacity(t *testing.T) {
	h := NewHealingPotion(-4)

	if h.Amount() != 0 {
		t.Errorf("Amount = %d, want 0", h.Amount())
	}
	if h.Use() != 0 {
		t.Error("Use on empty potion should restore nothing")
	}
}
