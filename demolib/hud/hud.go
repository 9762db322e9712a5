// Package hud draws a small bitmap-font text block over a rendered frame.
package hud

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	marginX = 4
	marginY = 4

	// fpsSmoothing is the weight of the newest sample in the FPS average.
	fpsSmoothing = 0.1
)

var defaultColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// HUD is a fixed block of text lines followed by a live stats line.
type HUD struct {
	lines []string
	color color.RGBA

	font       tinyfont.Fonter
	lineHeight int16

	fps     float64
	enabled bool
}

// New returns an enabled HUD showing lines above the stats line.
func New(lines ...string) *HUD {
	return &HUD{
		lines:      append([]string(nil), lines...),
		color:      defaultColor,
		font:       &tinyfont.TomThumb,
		lineHeight: 7,
		enabled:    true,
	}
}

func (h *HUD) SetColor(c color.RGBA) { h.color = c }
func (h *HUD) SetEnabled(on bool)    { h.enabled = on }
func (h *HUD) Enabled() bool         { return h.enabled }
func (h *HUD) Lines() []string       { return h.lines }
func (h *HUD) FPS() float64          { return h.fps }
func (h *HUD) LineHeight() int16     { return h.lineHeight }
func (h *HUD) Font() tinyfont.Fonter { return h.font }

// Observe feeds one frame delta into the FPS average. Zero deltas are ignored.
func (h *HUD) Observe(dt float64) {
	if dt <= 0 {
		return
	}
	sample := 1 / dt
	if h.fps == 0 {
		h.fps = sample
		return
	}
	h.fps += (sample - h.fps) * fpsSmoothing
}

// StatsLine is the last line drawn.
func (h *HUD) StatsLine(stars int) string {
	return fmt.Sprintf("stars %d  fps %.0f", stars, h.fps)
}

// Draw writes the text block in the top-left corner of d.
func (h *HUD) Draw(d drivers.Displayer, stars int) error {
	if !h.enabled || d == nil {
		return nil
	}
	y := int16(marginY) + h.lineHeight
	for _, s := range h.lines {
		tinyfont.WriteLine(d, h.font, marginX, y, s, h.color)
		y += h.lineHeight
	}
	tinyfont.WriteLine(d, h.font, marginX, y, h.StatsLine(stars), h.color)
	return d.Display()
}

// Width is the pixel width of the widest line.
func (h *HUD) Width(stars int) int {
	max := 0
	lines := make([]string, 0, len(h.lines)+1)
	lines = append(lines, h.lines...)
	for _, s := range append(lines, h.StatsLine(stars)) {
		_, w := tinyfont.LineWidth(h.font, s)
		if int(w) > max {
			max = int(w)
		}
	}
	return max
}
