package frame

// timer is a one-shot millisecond timer that the driver re-arms after every fire,
// the way a GLUT timer callback re-registers itself.
type timer struct {
	due    uint64
	period uint64
	armed  bool
}

func newTimer(initialDelay, period uint64) timer {
	return timer{due: initialDelay, period: period, armed: true}
}

// fire reports whether the timer is due at now and, if so, re-arms it one period
// after now. Missed periods are not replayed.
func (t *timer) fire(now uint64) bool {
	if !t.armed || now < t.due {
		return false
	}
	t.due = now + t.period
	return true
}

func (t *timer) next() uint64 { return t.due }
