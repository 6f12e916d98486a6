package gif

// Rows gives row-major access to frame pixels. Row takes a 1-based row index
// and returns the pixels of that row, each 0 or 1.
type Rows interface {
	Row(i int) []uint8
}

// Palette entries: index 0 is a dead cell, index 1 a live one.
var palette = [2][3]byte{
	{0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF},
}

func putUint16(buf []byte, off int, v int) {
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
}

// WriteHeader writes the GIF signature, logical screen descriptor, global
// color table and a loop-forever application extension at off. It returns the
// offset just past the header.
func WriteHeader(buf []byte, off, w, h int) int {
	p := off
	p += copy(buf[p:], "GIF89a")

	putUint16(buf, p, w)
	putUint16(buf, p+2, h)
	buf[p+4] = 0x80 // global color table of 2 entries
	buf[p+5] = 0
	buf[p+6] = 0
	p += 7

	for _, c := range palette {
		p += copy(buf[p:], c[:])
	}

	buf[p] = 0x21
	buf[p+1] = 0xFF
	buf[p+2] = 0x0B
	p += 3
	p += copy(buf[p:], "NETSCAPE2.0")
	buf[p] = 0x03
	buf[p+1] = 0x01
	putUint16(buf, p+2, 0)
	buf[p+4] = 0x00
	p += 5

	return p
}

// blockWriter splits a byte stream into length-prefixed sub-blocks.
type blockWriter struct {
	buf   []byte
	p     int
	start int
	n     int
}

func (b *blockWriter) put(c byte) {
	if b.n == maxBlock {
		b.buf[b.start] = maxBlock
		b.start = b.p
		b.p++
		b.n = 0
	}
	b.buf[b.p] = c
	b.p++
	b.n++
}

// WriteFrame writes one w by h image taken from cells, shown for delay
// hundredths of a second. It returns the offset just past the frame, which is
// always off + FrameSize(w, h).
func WriteFrame(buf []byte, off, w, h, delay int, cells Rows) int {
	p := off

	// Graphic control extension: no disposal, no transparency.
	buf[p] = 0x21
	buf[p+1] = 0xF9
	buf[p+2] = 0x04
	buf[p+3] = 0x04
	putUint16(buf, p+4, delay)
	buf[p+6] = 0
	buf[p+7] = 0
	p += gceSize

	buf[p] = 0x2C
	putUint16(buf, p+1, 0)
	putUint16(buf, p+3, 0)
	putUint16(buf, p+5, w)
	putUint16(buf, p+7, h)
	buf[p+9] = 0
	p += descSize

	buf[p] = minCodeSize
	p++

	bw := blockWriter{buf: buf, p: p + 1, start: p}
	run := runLength
	for i := 1; i <= h; i++ {
		for _, c := range cells.Row(i)[:w] {
			if run == runLength {
				bw.put(clearCode)
				run = 0
			}
			bw.put(c & 1)
			run++
		}
	}
	bw.put(endCode)
	buf[bw.start] = byte(bw.n)

	p = bw.p
	buf[p] = 0
	return p + 1
}

// WriteTrailer writes the stream terminator and returns the final offset.
func WriteTrailer(buf []byte, off int) int {
	buf[off] = 0x3B
	return off + trailerSize
}
