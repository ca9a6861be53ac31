//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Auto-repeat timing for held arrow keys, in ticks at 60 TPS.
const (
	repeatDelay    = 18
	repeatInterval = 3
)

var arrowKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, a := range arrowKeys {
		switch {
		case inpututil.IsKeyJustPressed(a.key):
			k.emit(KeyEvent{Code: a.code, Press: true})
		case inpututil.IsKeyJustReleased(a.key):
			k.emit(KeyEvent{Code: a.code})
		default:
			d := inpututil.KeyPressDuration(a.key)
			if d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
				k.emit(KeyEvent{Code: a.code, Press: true, Repeat: true})
			}
		}
	}
}

func isQuitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
