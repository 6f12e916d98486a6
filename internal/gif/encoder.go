package gif

import "fmt"

type encoderState int

const (
	stateFresh encoderState = iota
	stateFrames
	stateClosed
)

// Encoder threads the write offset through the header, frame and trailer
// writers so callers only hand over pixels. buf must be at least
// RequiredSize(w, h, frames) bytes long for the number of frames written.
type Encoder struct {
	buf    []byte
	off    int
	w, h   int
	delay  int
	frames int
	state  encoderState
}

// NewEncoder returns an encoder writing a w by h animation into buf from
// offset 0. delay is the per-frame display time in hundredths of a second.
func NewEncoder(buf []byte, w, h, delay int) *Encoder {
	return &Encoder{buf: buf, w: w, h: h, delay: delay}
}

// Offset returns the number of bytes written so far.
func (e *Encoder) Offset() int { return e.off }

// Frames returns the number of frames written so far.
func (e *Encoder) Frames() int { return e.frames }

// WriteHeader writes the global header. It must be called exactly once,
// before any frame.
func (e *Encoder) WriteHeader() {
	if e.state != stateFresh {
		panic("gif: header written twice")
	}
	e.off = WriteHeader(e.buf, e.off, e.w, e.h)
	e.state = stateFrames
}

// WriteFrame appends one frame.
func (e *Encoder) WriteFrame(cells Rows) {
	if e.state != stateFrames {
		panic(fmt.Sprintf("gif: frame %d written outside header/trailer", e.frames))
	}
	e.off = WriteFrame(e.buf, e.off, e.w, e.h, e.delay, cells)
	e.frames++
}

// WriteTrailer terminates the stream and returns the total length written.
func (e *Encoder) WriteTrailer() int {
	if e.state != stateFrames {
		panic("gif: trailer written before header or twice")
	}
	e.off = WriteTrailer(e.buf, e.off)
	e.state = stateClosed
	return e.off
}
