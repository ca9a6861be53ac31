package hal

import "time"

const tickDur = time.Millisecond

// hostTime emits one value per elapsed millisecond. Values are dropped when the
// channel is full; the count itself keeps running.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step advances by the wall-clock time since the previous call.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(1)
		return
	}
	t.acc += now.Sub(t.last)
	t.last = now
	t.drain()
}

// advance moves virtual time forward by d, independent of the wall clock.
func (t *hostTime) advance(d time.Duration) {
	t.acc += d
	t.drain()
}

func (t *hostTime) drain() {
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc %= tickDur
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

func (t *hostTime) now() uint64 { return t.seq }
