package render

import (
	"bufio"
	"io"

	"lifegif/pkg/core"
)

// WriteText prints the interior of g with 'O' for live and ' ' for dead
// cells, one line per row.
func WriteText(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, g.W+1)
	line[g.W] = '\n'
	for i := 1; i <= g.H; i++ {
		for j, c := range g.Row(i) {
			if c != 0 {
				line[j] = 'O'
			} else {
				line[j] = ' '
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
