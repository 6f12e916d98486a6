package render

import (
	"image/color"

	"lifegif/pkg/core"
)

// FillBinaryRGBA converts the interior of g into RGBA pixels in buf, which
// must hold 4*W*H bytes.
func FillBinaryRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	base := 0
	for i := 1; i <= g.H; i++ {
		for _, c := range g.Row(i) {
			if c != 0 {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			} else {
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
			base += 4
		}
	}
}
