// Package gif writes fixed-size animated GIF89a streams into a caller-owned
// byte slice. Image data uses literal-only LZW codes so every frame of a given
// width and height has exactly the same length, which lets the full file size
// be known before the first generation is computed.
package gif

const (
	// MaxDimension is the largest width or height a GIF screen can describe.
	MaxDimension = 0xFFFF

	minCodeSize = 7
	clearCode   = 1 << minCodeSize
	endCode     = clearCode + 1
	// Literals emitted between clear codes. After 126 codes the decoder's
	// next table slot reaches 256 and would widen codes to 9 bits.
	runLength = 126
	maxBlock  = 255

	headerSize  = 6 + 7 + 2*3 + 19
	gceSize     = 8
	descSize    = 10
	trailerSize = 1
)

// HeaderSize is the number of bytes WriteHeader produces.
func HeaderSize() int { return headerSize }

// TrailerSize is the number of bytes WriteTrailer produces.
func TrailerSize() int { return trailerSize }

// dataSize is the LZW code stream length for p pixels: one byte per pixel,
// one clear code per run and a single end code.
func dataSize(p int) int {
	return p + (p+runLength-1)/runLength + 1
}

// FrameSize is the number of bytes WriteFrame produces for a w by h frame.
func FrameSize(w, h int) int {
	d := dataSize(w * h)
	blocks := (d + maxBlock - 1) / maxBlock
	return gceSize + descSize + 1 + blocks + d + 1
}

// RequiredSize returns the exact length of an animation with the given number
// of frames.
func RequiredSize(w, h, steps int) int {
	return headerSize + steps*FrameSize(w, h) + trailerSize
}
