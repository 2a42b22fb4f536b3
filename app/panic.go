package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"paintbox/gfx"
	"paintbox/scene"
)

var (
	panicBackground = gfx.White
	panicText       = gfx.Black
)

// halt stops every scene, logs the panic and paints the report on each
// canvas.
func (s *System) halt(v any, stack []byte) {
	s.halted = true
	for _, id := range scene.IDs {
		s.ctl[id].Stop()
	}

	s.log.Error("scene panic", "panic", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		s.log.Error(line)
	}

	lines := []string{
		"paintbox panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	for _, id := range scene.IDs {
		drawReport(s.renderers[id], lines)
	}
}

// drawReport wraps lines to the canvas width and prints as many as fit.
func drawReport(r *gfx.Renderer, lines []string) {
	r.Clear(panicBackground)

	fontWidth := gfx.TextWidth("0")
	fontHeight := gfx.LineHeight()
	if fontWidth <= 0 || fontHeight <= 0 {
		return
	}
	w, h := r.Backend().Size()
	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > h {
				return
			}
			chunk, rest := takeRunes(line, cols)
			r.DrawText(0, y, chunk, panicText)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
