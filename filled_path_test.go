package fastuidraw_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fastuidraw "github.com/XoDeR/fastuidraw"
)

// polylinePath is the simplest possible TessellatedPath: each contour is
// a flat list of points, one edge per consecutive pair (closing back to
// the first point).
type polylinePath struct {
	contours [][]fastuidraw.Point
}

func (p *polylinePath) NumberContours() int { return len(p.contours) }

func (p *polylinePath) NumberEdges(contour int) int { return len(p.contours[contour]) }

func (p *polylinePath) EdgeRange(contour, edge int) (int, int) {
	base := 0
	for _, c := range p.contours[:contour] {
		base += len(c)
	}
	return base + edge, base + edge + 1
}

func (p *polylinePath) PointAt(index int) fastuidraw.Point {
	for _, c := range p.contours {
		if index < len(c) {
			return c[index]
		}
		index -= len(c)
	}
	panic("index out of range")
}

func (p *polylinePath) BoundingBox() (min, max fastuidraw.Point) {
	first := true
	for _, c := range p.contours {
		for _, pt := range c {
			if first {
				min, max = pt, pt
				first = false
				continue
			}
			if pt.X < min.X {
				min.X = pt.X
			}
			if pt.Y < min.Y {
				min.Y = pt.Y
			}
			if pt.X > max.X {
				max.X = pt.X
			}
			if pt.Y > max.Y {
				max.Y = pt.Y
			}
		}
	}
	return min, max
}

// EdgeRange above yields contiguous global point indices only when every
// contour is packed back to back in p.PointAt's numbering; build paths
// with a single helper so the two stay in sync.
func newPolylinePath(contours ...[]fastuidraw.Point) *polylinePath {
	return &polylinePath{contours: contours}
}

func starContour() []fastuidraw.Point {
	return []fastuidraw.Point{
		{X: 0.0, Y: 3.0},
		{X: -1.0, Y: 0.0},
		{X: 1.6, Y: 1.9},
		{X: -1.6, Y: 1.9},
		{X: 1.0, Y: 0.0},
	}
}

func squareContour() []fastuidraw.Point {
	return []fastuidraw.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
}

func TestFilledPathSingleContourProducesTriangles(t *testing.T) {
	path := newPolylinePath(starContour())
	fp := fastuidraw.NewFilledPath(path)

	subsets, diags := fp.Select(nil, 0, 0)
	require.NotEmpty(t, subsets)
	for _, d := range diags {
		t.Logf("diagnostic: %+v", d)
	}

	w := fastuidraw.NewDataWriter(subsets, fastuidraw.NonZeroFillRule)
	require.Greater(t, w.NumberAttributeChunks(), 0)

	for ic := 0; ic < w.NumberIndexChunks(); ic++ {
		n := w.NumberIndices(ic)
		assert.Equal(t, 0, n%3, "index chunk %d has a non-triangle count", ic)
		ac := w.AttributeChunkSelection(ic)
		nAttrib := w.NumberAttributes(ac)

		idx := make([]uint32, n)
		w.WriteIndices(idx, ic, 0)
		for _, i := range idx {
			assert.Less(t, int(i), nAttrib, "index out of range for its own attribute chunk")
		}
	}
}

func TestFilledPathNonZeroAndOddEvenAgreeOnASimpleSquare(t *testing.T) {
	// A single, non-self-intersecting square has winding 1 everywhere
	// inside: non-zero and odd-even must select the same geometry.
	path := newPolylinePath(squareContour())
	fp := fastuidraw.NewFilledPath(path)
	subsets, _ := fp.Select(nil, 0, 0)
	require.NotEmpty(t, subsets)

	nonZero := fastuidraw.NewDataWriter(subsets, fastuidraw.NonZeroFillRule)
	oddEven := fastuidraw.NewDataWriter(subsets, fastuidraw.OddEvenFillRule)

	total := func(w *fastuidraw.DataWriter) int {
		n := 0
		for ic := 0; ic < w.NumberIndexChunks(); ic++ {
			n += w.NumberIndices(ic)
		}
		return n
	}
	assert.Equal(t, total(nonZero), total(oddEven))
	assert.Greater(t, total(nonZero), 0)
}

func TestFilledPathComplementRulesAreDisjointFromTheirBase(t *testing.T) {
	path := newPolylinePath(squareContour())
	fp := fastuidraw.NewFilledPath(path)
	subsets, _ := fp.Select(nil, 0, 0)
	require.NotEmpty(t, subsets)

	nonZero := fastuidraw.NewDataWriter(subsets, fastuidraw.NonZeroFillRule)
	complement := fastuidraw.NewDataWriter(subsets, fastuidraw.ComplementNonZeroFillRule)

	// The square's interior has winding 1 everywhere, so the complement
	// (winding == 0) rule selects nothing from this path's own geometry.
	totalComplement := 0
	for ic := 0; ic < complement.NumberIndexChunks(); ic++ {
		totalComplement += complement.NumberIndices(ic)
	}
	assert.Equal(t, 0, totalComplement)

	totalNonZero := 0
	for ic := 0; ic < nonZero.NumberIndexChunks(); ic++ {
		totalNonZero += nonZero.NumberIndices(ic)
	}
	assert.Greater(t, totalNonZero, 0)
}

func TestFilledPathEmptyPathProducesNoTriangles(t *testing.T) {
	// A path with zero contours is not an error (§7 kind 3): it simply
	// bakes to an empty mesh.
	path := newPolylinePath()
	fp := fastuidraw.NewFilledPath(path)

	subsets, diags := fp.Select(nil, 0, 0)
	assert.Empty(t, diags)

	for _, s := range subsets {
		assert.Equal(t, 0, s.AttributeData().NumberAttributes())
	}
}

func TestFilledPathBakeAllMatchesLazyBaking(t *testing.T) {
	path := newPolylinePath(starContour())
	fp := fastuidraw.NewFilledPath(path)
	fp.BakeAll(context.Background(), 4)

	subsets, _ := fp.Select(nil, 0, 0)
	require.NotEmpty(t, subsets)
	for _, s := range subsets {
		assert.False(t, s.TriangulationFailed())
		assert.Greater(t, s.AttributeData().NumberAttributes(), 0)
	}

	lazy := fastuidraw.NewFilledPath(newPolylinePath(starContour()))
	lazySubsets, _ := lazy.Select(nil, 0, 0)
	require.Len(t, lazySubsets, len(subsets))
	for i, s := range subsets {
		assert.Equal(t, lazySubsets[i].AttributeData().NumberAttributes(), s.AttributeData().NumberAttributes())
	}
}

func TestFilledPathSelectRespectsClipPlanes(t *testing.T) {
	path := newPolylinePath(squareContour())
	fp := fastuidraw.NewFilledPath(path)

	// x >= 100 excludes the whole [0,10]x[0,10] square.
	outside := []fastuidraw.ClipPlane{{A: 1, B: 0, C: -100}}
	subsets, _ := fp.Select(outside, 0, 0)
	assert.Empty(t, subsets)
}

func TestFilledPathSelectBudgetIsPerNodeNotPooled(t *testing.T) {
	path := newPolylinePath(starContour())
	fp := fastuidraw.NewFilledPath(path)

	unlimited, _ := fp.Select(nil, 0, 0)
	require.NotEmpty(t, unlimited)
	wantAttrs := 0
	for _, s := range unlimited {
		wantAttrs += s.AttributeData().NumberAttributes()
	}

	// A tiny non-zero budget must still select every clip-visible leaf
	// (P5 cover) and merely report that the budget was exceeded, rather
	// than silently dropping leaves once earlier ones "spent" a pool.
	limited, diags := fp.Select(nil, 1, 1)
	require.Len(t, limited, len(unlimited))

	gotAttrs := 0
	for _, s := range limited {
		gotAttrs += s.AttributeData().NumberAttributes()
	}
	assert.Equal(t, wantAttrs, gotAttrs)

	foundBudgetDiag := false
	for _, d := range diags {
		if d.Kind == fastuidraw.DiagnosticBudgetExhausted {
			foundBudgetDiag = true
		}
	}
	assert.True(t, foundBudgetDiag, "expected a DiagnosticBudgetExhausted for an over-budget leaf")
}
