// Package world reads externally supplied starting worlds.
//
// The format is plaintext rows: lines starting with '!' are comments, '.',
// '0' and ' ' are dead cells, 'O', '*' and '1' are live cells. Rows shorter
// than the grid and missing rows are dead. Files ending in ".zst" are
// zstd-compressed.
package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"lifegif/pkg/core"
)

// ErrMalformed reports an input that is not a valid world for the grid.
var ErrMalformed = errors.New("malformed world")

// Load fills the interior of g from r. The border is left untouched.
func Load(r io.Reader, g *core.Grid) error {
	g.Clear()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), g.W+1024)

	row, line := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(text, "!") {
			continue
		}
		row++
		if row > g.H {
			if strings.Trim(text, ". 0") == "" {
				continue
			}
			return fmt.Errorf("line %d: world has more than %d rows: %w", line, g.H, ErrMalformed)
		}
		cells := g.Row(row)
		for j := 0; j < len(text); j++ {
			var v uint8
			switch text[j] {
			case '.', '0', ' ':
			case 'O', '*', '1':
				v = 1
			default:
				return fmt.Errorf("line %d column %d: unexpected %q: %w", line, j+1, text[j], ErrMalformed)
			}
			if j >= g.W {
				if v == 1 {
					return fmt.Errorf("line %d: live cell beyond width %d: %w", line, g.W, ErrMalformed)
				}
				continue
			}
			cells[j] = v
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line %d: row longer than width %d: %w", line+1, g.W, ErrMalformed)
		}
		return fmt.Errorf("read world: %w", err)
	}
	return nil
}

// LoadFile opens path, decompressing it when it ends in ".zst", and loads
// it into g.
func LoadFile(path string, g *core.Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("zstd decode: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	if err := Load(r, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
