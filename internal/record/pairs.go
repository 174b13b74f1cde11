package record

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/arrivability/sceneplot/internal/geom"
)

// The writer that produces scene files prints every coordinate as "(r c)"
// followed by a space. Pair lines are therefore split on the literal ") ",
// leaving the closing parenthesis on the final pair only.
const pairSeparator = ") "

// SplitPairs cuts a pair line into its fragments. A line ending in ") "
// produces an empty final fragment.
func SplitPairs(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r\n"), pairSeparator)
}

// ParsePair reads one fragment of the form "(X Y", "(X Y)" or "(X Y)\n".
// It returns the number of whitespace separated sub-tokens alongside any
// error so callers can report the shape they saw.
func ParsePair(fragment string) (geom.Coord, int, error) {
	parts := strings.Fields(fragment)
	if len(parts) != 2 {
		return geom.Coord{}, len(parts), errors.Errorf("pair %q needs 2 values", fragment)
	}
	x := strings.TrimPrefix(parts[0], "(")
	y := strings.TrimRight(parts[1], ")\r\n")

	row, err := parseFloat(x)
	if err != nil {
		return geom.Coord{}, 2, err
	}
	col, err := parseFloat(y)
	if err != nil {
		return geom.Coord{}, 2, err
	}
	return geom.Coord{Row: row, Col: col}, 2, nil
}

// Fragments of one path line, exactly as split.
type Fragments []string

// DropStrayFragment removes the trailing fragment of a path line. It is left
// over by the trailing separator the writer emits after the last pair, and it
// never carries a usable coordinate. A line of k fragments keeps k-1 of them,
// which yields k-2 segments once drawn.
func (f Fragments) DropStrayFragment() (kept Fragments, stray string) {
	if len(f) == 0 {
		return nil, ""
	}
	return f[:len(f)-1], f[len(f)-1]
}
