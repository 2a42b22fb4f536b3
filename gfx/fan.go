package gfx

// FanIndices expands a triangle fan of count points into a triangle list:
// (0,1,2), (0,2,3), ... Backends without a native fan primitive draw with it.
func FanIndices(count int) []uint16 {
	if count < 3 {
		return nil
	}
	out := make([]uint16, 0, (count-2)*3)
	for i := 1; i+1 < count; i++ {
		out = append(out, 0, uint16(i), uint16(i+1))
	}
	return out
}

// ClipToPixel maps a clip-space point onto pixel centers of a w x h canvas
// with y pointing down: -1 lands on the center of pixel 0 and 1 on the center
// of pixel w-1. Every backend places vertices with it.
func ClipToPixel(x, y float32, w, h int) (float32, float32) {
	return (x*0.5 + 0.5) * float32(w-1), (0.5 - y*0.5) * float32(h-1)
}
