package life

import (
	"fmt"
	"sort"

	"lifegif/pkg/core"
)

// Pattern is a literal starting world. Rows are read top to bottom with '.'
// marking a dead cell and any other rune a live one.
type Pattern struct {
	Name string
	Rows []string
}

// GliderGun is the Gosper glider gun, anchored at the top-left corner.
var GliderGun = Pattern{
	Name: "gun",
	Rows: []string{
		"..........................................",
		"..........................................",
		"..........................................",
		"..........................................",
		"..........................................",
		"..........................................",
		"........................OO.........OO.....",
		".......................O.O.........OO.....",
		".OO.......OO...........OO.................",
		".OO......O.O..............................",
		".........OO......OO.......................",
		".................O.O......................",
		".................O........................",
		"....................................OO....",
		"....................................O.O...",
		"....................................O.....",
		"..........................................",
		"..........................................",
		".........................OOO..............",
		".........................O................",
		"..........................O...............",
		"..........................................",
	},
}

// Blinker is a vertical period-2 oscillator, two cells away from the edges.
var Blinker = Pattern{
	Name: "blinker",
	Rows: []string{
		".....",
		".....",
		"..O..",
		"..O..",
		"..O..",
	},
}

// Block is the 2x2 still life.
var Block = Pattern{
	Name: "block",
	Rows: []string{
		"....",
		".OO.",
		".OO.",
	},
}

var patterns = map[string]Pattern{
	GliderGun.Name: GliderGun,
	Blinker.Name:   Blinker,
	Block.Name:     Block,
}

// LookupPattern returns the named built-in pattern.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern %q (have %v)", name, PatternNames())
	}
	return p, nil
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply fills the interior of g from the pattern. Coordinates outside the
// pattern's extent are dead; pattern cells outside the grid are dropped.
func (p Pattern) Apply(g *core.Grid) {
	for i := 1; i <= g.H; i++ {
		row := g.Row(i)
		for j := range row {
			row[j] = 0
			if i-1 < len(p.Rows) && j < len(p.Rows[i-1]) && p.Rows[i-1][j] != '.' {
				row[j] = 1
			}
		}
	}
}
