package timer

import (
	"testing"
	"time"
)

func TestQueue_AdvanceFiresInDueOrder(t *testing.T) {
	q := NewQueue()
	var got []string

	q.After(3*time.Second, func() { got = append(got, "c") })
	q.After(1*time.Second, func() { got = append(got, "a") })
	q.After(2*time.Second, func() { got = append(got, "b") })

	if fired := q.Advance(5 * time.Second); fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("order = %v, want [a b c]", got)
	}
	if q.Now() != 5*time.Second {
		t.Errorf("Now = %v, want 5s", q.Now())
	}
}

func TestQueue_TiesFireInScheduleOrder(t *testing.T) {
	q := NewQueue()
	var got []int

	for i := range 5 {
		q.After(time.Second, func() { got = append(got, i) })
	}
	q.Advance(time.Second)

	for i, v := range got {
		if v != i {
			t.Fatalf("order = %v, want ascending", got)
		}
	}
	if len(got) != 5 {
		t.Errorf("fired %d callbacks, want 5", len(got))
	}
}

func TestQueue_NotDueYet(t *testing.T) {
	q := NewQueue()
	fired := false
	q.After(5*time.Second, func() { fired = true })

	q.Advance(4999 * time.Millisecond)
	if fired {
		t.Fatal("callback fired early")
	}
	if q.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", q.Pending())
	}

	q.Advance(time.Millisecond)
	if !fired {
		t.Fatal("callback should fire exactly at its deadline")
	}
	if q.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", q.Pending())
	}
}

func TestQueue_NowDuringCallbackIsDeadline(t *testing.T) {
	q := NewQueue()
	var seen time.Duration
	q.After(2*time.Second, func() { seen = q.Now() })

	q.Advance(10 * time.Second)

	if seen != 2*time.Second {
		t.Errorf("Now inside callback = %v, want 2s", seen)
	}
}

func TestQueue_CallbackCanReschedule(t *testing.T) {
	q := NewQueue()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			q.After(time.Second, tick)
		}
	}
	q.After(time.Second, tick)

	// 再登録されたタスクも期限内なら同じAdvanceで実行される
	if fired := q.Advance(3 * time.Second); fired != 3 {
		t.Errorf("fired = %d, want 3", fired)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestQueue_Stop(t *testing.T) {
	q := NewQueue()
	fired := false
	h := q.After(time.Second, func() { fired = true })
	q.After(time.Second, func() {})

	if !h.Stop() {
		t.Fatal("Stop on pending task should return true")
	}
	if h.Stop() {
		t.Error("second Stop should return false")
	}

	q.Advance(2 * time.Second)
	if fired {
		t.Error("stopped callback must not fire")
	}
}

func TestQueue_StopAfterFire(t *testing.T) {
	q := NewQueue()
	h := q.After(0, func() {})

	q.Advance(0)

	if h.Stop() {
		t.Error("Stop after fire should return false")
	}
}

func TestQueue_NegativeValuesClamp(t *testing.T) {
	q := NewQueue()
	fired := false
	q.After(-time.Second, func() { fired = true })

	q.Advance(-time.Second)

	if !fired {
		t.Error("negative delay should be treated as due now")
	}
	if q.Now() != 0 {
		t.Errorf("Now = %v, want 0", q.Now())
	}
}

func TestWall_StopBeforeFire(t *testing.T) {
	fired := make(chan struct{})
	h := Wall{}.After(time.Hour, func() { close(fired) })

	if !h.Stop() {
		t.Fatal("Stop should cancel a pending wall timer")
	}
}

func TestWall_Fires(t *testing.T) {
	fired := make(chan struct{})
	Wall{}.After(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("wall timer did not fire")
	}
}
