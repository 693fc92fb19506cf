package ui

import (
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/balance/scale"
)

const (
	minBeamWidth = 21

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 0.5
)

type beamKey struct {
	centi int // angle in hundredths of a degree
	width int
}

// BeamRenderer draws the beam and stand as rows of text. A converging beam
// revisits the same handful of angles every swing, so rows are cached.
type BeamRenderer struct {
	cache *lru.Cache[beamKey, []string]
}

// NewBeamRenderer creates a renderer caching up to size drawings. A
// non-positive size uses the default.
func NewBeamRenderer(size int) *BeamRenderer {
	if size < 1 {
		size = beamCacheSize
	}
	cache, err := lru.New[beamKey, []string](size)
	if err != nil {
		panic(err) // size is positive
	}
	return &BeamRenderer{cache: cache}
}

// Render returns the rows for angle at the given width. Positive angles
// put the left end down. Width is forced odd so the pivot has a column.
// The returned slice is shared with the cache and must not be modified.
func (b *BeamRenderer) Render(angle float64, width int) []string {
	if width < minBeamWidth {
		width = minBeamWidth
	}
	if width%2 == 0 {
		width--
	}

	key := beamKey{centi: int(math.Round(scale.Clamp(angle) * 100)), width: width}
	if rows, ok := b.cache.Get(key); ok {
		return rows
	}
	rows := drawBeam(float64(key.centi)/100, width)
	b.cache.Add(key, rows)
	return rows
}

// Len returns the number of cached drawings.
func (b *BeamRenderer) Len() int {
	return b.cache.Len()
}

func drawBeam(angle float64, width int) []string {
	half := width / 2
	slope := math.Tan(angle*math.Pi/180) * cellAspect
	reach := int(math.Ceil(math.Tan(scale.MaxAngle*math.Pi/180) * cellAspect * float64(half)))
	height := 2*reach + 1

	grid := make([][]rune, height+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	rowAt := func(x int) int {
		return reach + int(math.Round(-slope*float64(x-half)))
	}

	for x := 0; x < width; x++ {
		row := rowAt(x)
		var ch rune
		switch {
		case x == 0:
			ch = '['
		case x == width-1:
			ch = ']'
		case rowAt(x+1) < row:
			ch = '/'
		case rowAt(x+1) > row:
			ch = '\\'
		default:
			ch = '='
		}
		grid[row][x] = ch
	}

	grid[reach][half] = 'o'
	for row := reach + 1; row < height; row++ {
		grid[row][half] = '|'
	}
	for x := half - 3; x <= half+3; x++ {
		grid[height][x] = '^'
	}

	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = strings.TrimRight(string(r), " ")
	}
	return rows
}
