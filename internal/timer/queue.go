package timer

import (
	"container/heap"
	"sync"
	"time"

	"powerplay/domain"
)

// Queue は仮想時間で動く遅延タスクキューです。
// Advanceを呼んだ分だけ時間が進み、期限を迎えたコールバックが期限順に実行されます。
// 期限が同じ場合は登録順です。
type Queue struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks taskHeap
}

var _ domain.Scheduler = (*Queue)(nil)

// NewQueue は仮想時刻0の空のQueueを生成します。
func NewQueue() *Queue {
	return &Queue{}
}

// After はdelay経過後(仮想時間)にfnを実行するよう登録します。負のdelayは0として扱います。
func (q *Queue) After(delay time.Duration, fn func()) domain.TimerHandle {
	if delay < 0 {
		delay = 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	t := &task{
		at:    q.now + delay,
		seq:   q.seq,
		fn:    fn,
		queue: q,
	}
	heap.Push(&q.tasks, t)
	return t
}

// Advance は仮想時間をdだけ進め、期限を迎えたコールバックを実行して実行数を返します。
// コールバックはロックを保持せずに呼ばれるため、その中からAfterで再登録できます。
// 再登録されたタスクも期限内であれば同じAdvanceの中で実行されます。
func (q *Queue) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	q.mu.Lock()
	target := q.now + d
	fired := 0
	for len(q.tasks) > 0 && q.tasks[0].at <= target {
		t := heap.Pop(&q.tasks).(*task)
		if t.at > q.now {
			q.now = t.at
		}
		q.mu.Unlock()
		t.fn()
		fired++
		q.mu.Lock()
	}
	if target > q.now {
		q.now = target
	}
	q.mu.Unlock()
	return fired
}

// Now は現在の仮想時刻(生成からの経過時間)を返します。
func (q *Queue) Now() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.now
}

// Pending は未実行のタスク数を返します。
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

type task struct {
	at    time.Duration
	seq   uint64
	fn    func()
	index int // heap内の位置。取り出し後は-1
	queue *Queue
}

func (t *task) Stop() bool {
	q := t.queue
	q.mu.Lock()
	defer q.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	return true
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
