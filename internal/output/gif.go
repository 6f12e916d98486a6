package output

import (
	"fmt"

	"lifegif/internal/gif"
	"lifegif/internal/mmapfile"
	"lifegif/pkg/core"
)

// GIF streams every generation into a memory-mapped animated GIF sized for
// exactly the configured number of steps.
type GIF struct {
	region *mmapfile.Region
	enc    *gif.Encoder
	steps  int
}

// CreateGIF stretches path to the size of a steps-frame w by h animation and
// maps it. delay is the frame time in hundredths of a second.
func CreateGIF(path string, w, h, steps, delay int) (*GIF, error) {
	region, err := mmapfile.Create(path, gif.RequiredSize(w, h, steps))
	if err != nil {
		return nil, err
	}
	return &GIF{
		region: region,
		enc:    gif.NewEncoder(region.Bytes(), w, h, delay),
		steps:  steps,
	}, nil
}

// Size returns the length of the output file.
func (s *GIF) Size() int { return s.region.Len() }

// Begin writes the animation header.
func (s *GIF) Begin(*core.Grid) error {
	s.enc.WriteHeader()
	return nil
}

// Frame encodes the generation produced by step n.
func (s *GIF) Frame(_ int, g *core.Grid) {
	s.enc.WriteFrame(g)
}

// End writes the trailer, then flushes and unmaps the file.
func (s *GIF) End() error {
	if s.enc.Frames() != s.steps {
		s.region.Close()
		return fmt.Errorf("%s: wrote %d frames, file sized for %d", s.region.Path(), s.enc.Frames(), s.steps)
	}
	if end := s.enc.Offset() + gif.TrailerSize(); end != s.region.Len() {
		s.region.Close()
		return fmt.Errorf("%s: stream ends at %d, file size is %d", s.region.Path(), end, s.region.Len())
	}
	s.enc.WriteTrailer()
	return s.region.Close()
}

// Abort releases the file without finishing the stream.
func (s *GIF) Abort() error {
	return s.region.Close()
}
