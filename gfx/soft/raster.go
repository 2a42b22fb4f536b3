package soft

import (
	"image/color"

	"paintbox/gfx"
)

type point struct {
	x, y int
}

// clipToScreen snaps gfx.ClipToPixel to the nearest pixel.
func clipToScreen(x, y float32, w, h int) point {
	sx, sy := gfx.ClipToPixel(x, y, w, h)
	return point{x: roundInt(sx), y: roundInt(sy)}
}

func roundInt(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// fillTriangle rasterizes one triangle with a flat color. Either winding is
// accepted since mirrored shapes flip orientation.
func fillTriangle(t Target, w, h int, p0, p1, p2 point, c color.RGBA) {
	area := edgeFn(p0, p1, p2)
	if area == 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
	}

	minX, maxX := min3(p0.x, p1.x, p2.x), max3(p0.x, p1.x, p2.x)
	minY, maxY := min3(p0.y, p1.y, p2.y), max3(p0.y, p1.y, p2.y)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := point{x: x, y: y}
			w0 := edgeFn(p1, p2, p)
			w1 := edgeFn(p2, p0, p)
			w2 := edgeFn(p0, p1, p)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(a, b, p point) int {
	return (p.x-a.x)*(b.y-a.y) - (p.y-a.y)*(b.x-a.x)
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
