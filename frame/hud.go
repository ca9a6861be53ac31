package frame

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"bouncer/hal"
	"bouncer/internal/buildinfo"
	"bouncer/world"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudFG = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	hudBG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x99}
)

const hudPad = 4

// HUD draws a single status line over the top-left corner of the frame.
type HUD struct {
	title string
	font  tinyfont.Fonter
}

func NewHUD(title string) *HUD {
	return &HUD{title: title, font: &proggy.TinySZ8pt7b}
}

// Line formats the status text for a frame.
func (h *HUD) Line(w *world.World, frames uint64) string {
	eye := w.Camera.Eye()
	minX, maxX, minZ, maxZ := w.Board.Extent()
	n := w.Board.Cells()
	return fmt.Sprintf("%s (%s)  eye %s  board %dx%d %gx%g  balls %d  frame %d",
		h.title, buildinfo.Short(), eye, n, n, maxX-minX, maxZ-minZ, len(w.Balls), frames)
}

// Draw renders line onto d with a translucent backing strip.
func (h *HUD) Draw(d *fbDisplay, line string) {
	_, width := tinyfont.LineWidth(h.font, line)
	height := int16(h.font.GetYAdvance())
	d.FillRectangle(0, 0, int16(width)+2*hudPad, height+2*hudPad, hudBG)
	tinyfont.WriteLine(d, h.font, hudPad, hudPad+height-2, line, hudFG)
}

var (
	textFG = color.RGBA{A: 0xFF}
	textBG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// DrawText fills fb with white and writes lines top-down in black, wrapping at the right
// edge. Lines that do not fit vertically are dropped.
func DrawText(fb hal.Framebuffer, lines []string) {
	d := &fbDisplay{fb: fb}
	font := tinyfont.Fonter(&proggy.TinySZ8pt7b)
	fb.ClearRGB(textBG.R, textBG.G, textBG.B)

	_, cw := tinyfont.LineWidth(font, "0")
	lineH := int16(font.GetYAdvance())
	if cw == 0 || lineH <= 0 {
		return
	}
	cols := (fb.Width() - 2*hudPad) / int(cw)
	if cols <= 0 {
		cols = 1
	}

	y := int16(hudPad) + lineH
	for _, line := range lines {
		for {
			chunk, rest := takeRunes(line, cols)
			if int(y) > fb.Height() {
				return
			}
			tinyfont.WriteLine(d, font, hudPad, y-2, chunk, textFG)
			y += lineH
			if rest == "" {
				break
			}
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s, ""
	}
	i := 0
	for count := 0; count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
