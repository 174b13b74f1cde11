// Package record reads the positional text formats of scene and obstacle
// files.
//
// Both formats are line oriented: a record's meaning depends only on where it
// sits and on counts declared by earlier lines. A Reader hands out one record
// at a time and reports the file and line of anything it cannot parse.
package record

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/arrivability/sceneplot/internal/fault"
	"github.com/arrivability/sceneplot/internal/geom"
)

// Path lines grow with the grid; a few thousand nodes overflow bufio's default.
const maxLineLength = 1 << 20

type Reader struct {
	name    string
	scanner *bufio.Scanner
	line    int
}

func NewReader(name string, r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Reader{name: name, scanner: scanner}
}

func (r *Reader) Name() string { return r.name }

// Line number of the last line read, 1-based.
func (r *Reader) Line() int { return r.line }

func (r *Reader) next(kind string, index int, expected int) (string, error) {
	if !r.scanner.Scan() {
		err := r.scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", &fault.MalformedRecordError{
			File: r.name, Line: r.line + 1, Kind: kind, Index: index,
			Expected: expected, Actual: 0, Err: err,
		}
	}
	r.line++
	return r.scanner.Text(), nil
}

func (r *Reader) malformed(kind string, index, expected, actual int, err error) error {
	return &fault.MalformedRecordError{
		File: r.name, Line: r.line, Kind: kind, Index: index,
		Expected: expected, Actual: actual, Err: err,
	}
}

// ReadDims reads the "rows cols" header line.
func (r *Reader) ReadDims() (rows, cols int, err error) {
	line, err := r.next("dims", -1, 2)
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, r.malformed("dims", -1, 2, len(fields), nil)
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, r.malformed("dims", -1, 2, len(fields), err)
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, r.malformed("dims", -1, 2, len(fields), err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, r.malformed("dims", -1, 2, len(fields), errors.Errorf("grid %dx%d is not positive", rows, cols))
	}
	return rows, cols, nil
}

// ReadCount reads the first token of the next line as a count. Anything after
// it on the line is ignored.
func (r *Reader) ReadCount(kind string) (int, error) {
	return r.readCount(kind, -1)
}

func (r *Reader) readCount(kind string, index int) (int, error) {
	line, err := r.next(kind, index, 1)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return 0, r.malformed(kind, index, 1, 0, nil)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, r.malformed(kind, index, 1, len(fields), err)
	}
	if n < 0 {
		return 0, r.malformed(kind, index, 1, len(fields), errors.Errorf("negative count %d", n))
	}
	return n, nil
}

// ReadPointRow reads one line holding n pairs. Fragments past the n-th are
// ignored, so a trailing separator is harmless.
func (r *Reader) ReadPointRow(n int) ([]geom.Coord, error) {
	line, err := r.next("point row", -1, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []geom.Coord{}, nil
	}
	fragments := SplitPairs(line)
	if pairs := countPairs(fragments); pairs < n {
		return nil, r.malformed("point row", -1, n, pairs, nil)
	}
	points := make([]geom.Coord, n)
	for i := 0; i < n; i++ {
		c, tokens, err := ParsePair(fragments[i])
		if err != nil {
			return nil, r.malformed("point", i, 2, tokens, err)
		}
		points[i] = c
	}
	return points, nil
}

// ReadSinglePoint reads a line holding exactly one pair, such as the start or
// end of a scene.
func (r *Reader) ReadSinglePoint(kind string) (geom.Coord, error) {
	line, err := r.next(kind, -1, 2)
	if err != nil {
		return geom.Coord{}, err
	}
	c, tokens, err := ParsePair(line)
	if err != nil {
		return geom.Coord{}, r.malformed(kind, -1, 2, tokens, err)
	}
	return c, nil
}

// ReadPath reads one path line and returns every fragment, the stray trailing
// one included. The number of pairs is not declared anywhere; it is the number
// of fragments on the line.
func (r *Reader) ReadPath(index int) (Fragments, error) {
	line, err := r.next("path", index, 1)
	if err != nil {
		return nil, err
	}
	return Fragments(SplitPairs(line)), nil
}

// ParsePath drops the stray fragment and parses the rest as coordinates.
func (r *Reader) ParsePath(index int, fragments Fragments) ([]geom.Coord, string, error) {
	kept, stray := fragments.DropStrayFragment()
	points := make([]geom.Coord, len(kept))
	for i, fragment := range kept {
		c, tokens, err := ParsePair(fragment)
		if err != nil {
			return nil, "", r.malformed("path vertex", i, 2, tokens, errors.Wrapf(err, "path #%d", index))
		}
		points[i] = c
	}
	return points, stray, nil
}

// ReadPolygonSides reads the vertex count that opens a polygon record.
func (r *Reader) ReadPolygonSides(index int) (int, error) {
	return r.readCount("polygon sides", index)
}

// ReadPolygon reads sides lines of integer "row col" vertices.
func (r *Reader) ReadPolygon(sides int) ([]geom.Coord, error) {
	vertices := make([]geom.Coord, sides)
	for i := 0; i < sides; i++ {
		line, err := r.next("polygon vertex", i, 2)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, r.malformed("polygon vertex", i, 2, len(fields), nil)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, r.malformed("polygon vertex", i, 2, len(fields), err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, r.malformed("polygon vertex", i, 2, len(fields), err)
		}
		vertices[i] = geom.Coord{Row: float64(row), Col: float64(col)}
	}
	return vertices, nil
}

// countPairs counts fragments with any content. The separator written after
// the last pair leaves an empty fragment that does not count.
func countPairs(fragments []string) int {
	n := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			n++
		}
	}
	return n
}

func parseFloat(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad number %q", token)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.Errorf("non-finite number %q", token)
	}
	return v, nil
}
