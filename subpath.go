package fastuidraw

// boundaryTag records, per axis, whether a point lies on the min edge, the
// max edge, or in the interior of the bounding box active when the point
// was created. Ported from SubContourPoint::on_boundary_t.
type boundaryTag uint8

const (
	notOnBoundary boundaryTag = iota
	onMinBoundary
	onMaxBoundary
)

// Corner classification, ported from the anonymous enum next to
// box_next_neighbor: bit 0 set means "on the max edge along X", bit 1 set
// means "on the max edge along Y".
const (
	boxMaxXFlag   = 1
	boxMaxYFlag   = 2
	boxMinXMinY   = 0
	boxMinXMaxY   = boxMaxYFlag
	boxMaxXMaxY   = boxMaxXFlag | boxMaxYFlag
	boxMaxXMinY   = boxMaxXFlag
	notCornerType = 4
)

// boxNextNeighbor walks the 4-cycle mm -> mM -> MM -> Mm -> mm.
func boxNextNeighbor(v int) int {
	next := [4]int{boxMinXMaxY, boxMinXMinY, boxMaxXMaxY, boxMaxXMinY}
	return next[v]
}

// subContourPoint is a vertex as tracked through the SubPath split tree:
// the point plus the boundary/corner metadata the spatial split needs to
// detect and collapse degenerate (box-tracing) contours.
type subContourPoint struct {
	pt                  Point
	startTessellatedEdge bool
	boundaryType        [2]boundaryTag
	cornerPointType     int // 0..3 if isCornerPoint, else notCornerType
}

func newSubContourPoint(p Point, start bool) subContourPoint {
	return subContourPoint{
		pt:                   p,
		startTessellatedEdge: start,
		boundaryType:         [2]boundaryTag{notOnBoundary, notOnBoundary},
		cornerPointType:      notCornerType,
	}
}

// newSplitSubContourPoint builds the point the spatial split emits at a
// straddled edge's crossing; mirrors the SubContourPoint(a, b, pt,
// split_coordinate, tp) constructor.
func newSplitSubContourPoint(a, b subContourPoint, pt Point, splitCoordinate int, tp boundaryTag) subContourPoint {
	s := subContourPoint{pt: pt, startTessellatedEdge: true}
	unsplit := 1 - splitCoordinate
	if a.boundaryType[unsplit] == b.boundaryType[unsplit] {
		s.boundaryType[unsplit] = a.boundaryType[unsplit]
	} else {
		s.boundaryType[unsplit] = notOnBoundary
	}
	s.boundaryType[splitCoordinate] = tp

	if s.isCornerPoint() {
		s.cornerPointType = 0
		if s.boundaryType[0] == onMaxBoundary {
			s.cornerPointType |= boxMaxXFlag
		}
		if s.boundaryType[1] == onMaxBoundary {
			s.cornerPointType |= boxMaxYFlag
		}
	} else {
		s.cornerPointType = notCornerType
	}
	return s
}

func (s subContourPoint) isCornerPoint() bool {
	return s.boundaryType[0] != notOnBoundary && s.boundaryType[1] != notOnBoundary
}

func axisValue(p Point, axis int) float32 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// subContour is an ordered, implicitly-closed ring of subContourPoints.
type subContour []subContourPoint

// subPath is the recursively splittable representation of a path's
// contours (§4.2). The root is built once from a TessellatedPath; split()
// consumes a SubPath and produces two children.
type subPath struct {
	bounds       boundingBox
	contours     []subContour
	totalPoints  int
	windingStart int
}

func newRootSubPath(p TessellatedPath) *subPath {
	min, max := p.BoundingBox()
	sp := &subPath{bounds: boundingBox{Min: min, Max: max}}
	for _, pts := range flattenPath(p) {
		sp.contours = append(sp.contours, copyContour(pts))
		sp.totalPoints += len(pts)
	}
	return sp
}

// copyContour mirrors SubPath::copy_contour, except that only the first
// point of the contour is tagged start_tessellated_edge: flattenPath does
// not keep edge boundaries, so the first points of later edges are not
// tagged. Consecutive shared endpoints
// between edges are not duplicated (tessellated paths already give a
// continuous polyline per contour, so a direct point list suffices here --
// the edge-range bookkeeping that copy_contour performs to avoid
// duplication was needed against the original's per-edge storage, which
// flattenPath has already collapsed).
func copyContour(pts []Point) subContour {
	c := make(subContour, len(pts))
	for i, p := range pts {
		c[i] = newSubContourPoint(p, i == 0)
	}
	return c
}

func newInteriorSubPath(bb boundingBox, contours []subContour, windingStart int) *subPath {
	sp := &subPath{bounds: bb, contours: contours, windingStart: windingStart}
	for _, c := range contours {
		sp.totalPoints += len(c)
	}
	return sp
}

// sizeMaxRatio forces a split along the long axis when the box is more
// than this much wider than tall (or vice versa). Ported from
// SubsetConstants::size_max_ratio.
const sizeMaxRatio = 4.0

// recursionDepthMax and pointsPerSubsetMax are the SubPath recursion
// termination thresholds, ported from SubsetConstants.
const (
	recursionDepthMax = 12
	pointsPerSubsetMax = 64
)

// chooseSplittingCoordinate ports SubPath::choose_splitting_coordinate.
func (sp *subPath) chooseSplittingCoordinate(mid Point) int {
	if sizeMaxRatio > 0 {
		w := sp.bounds.Max.X - sp.bounds.Min.X
		h := sp.bounds.Max.Y - sp.bounds.Min.Y
		if w >= sizeMaxRatio*h {
			return 0
		} else if h >= sizeMaxRatio*w {
			return 1
		}
	}

	var numberPointsBefore, numberPointsAfter [2]int
	for _, c := range sp.contours {
		if len(c) == 0 {
			continue
		}
		prevPt := c[len(c)-1].pt
		for _, sc := range c {
			pt := sc.pt
			for i := 0; i < 2; i++ {
				midI := axisValue(mid, i)
				prevV := axisValue(prevPt, i)
				v := axisValue(pt, i)
				prevB := prevV < midI
				b := v < midI

				if b || v == midI {
					numberPointsBefore[i]++
				}
				if !b || v == midI {
					numberPointsAfter[i]++
				}
				if prevV != midI && prevB != b {
					numberPointsBefore[i]++
					numberPointsAfter[i]++
				}
			}
			prevPt = pt
		}
	}

	numberPoints := [2]int{
		numberPointsBefore[0] + numberPointsAfter[0],
		numberPointsBefore[1] + numberPointsAfter[1],
	}
	if numberPoints[0] < numberPoints[1] {
		return 0
	}
	return 1
}

// computeSplitPoint ports SubPath::compute_spit_point: linear
// interpolation along the splitting coordinate only, so the split
// coordinate of the result is exactly splittingValue (exactly
// reproducible, per §4.2).
func computeSplitPoint(a, b Point, splitCoordinate int, splittingValue float32) Point {
	av := axisValue(a, splitCoordinate)
	bv := axisValue(b, splitCoordinate)
	t := (splittingValue - av) / (bv - av)

	aOther := axisValue(a, 1-splitCoordinate)
	bOther := axisValue(b, 1-splitCoordinate)
	other := (1-t)*aOther + t*bOther

	var r Point
	if splitCoordinate == 0 {
		r.X, r.Y = splittingValue, other
	} else {
		r.X, r.Y = other, splittingValue
	}
	return r
}

// splitContour ports SubPath::split_contour: walks the (implicitly closed)
// contour, emitting each point into C0 (<=splittingValue side) and/or C1
// (>=splittingValue side), inserting a tagged crossing point whenever
// consecutive points fall on strictly opposite sides.
func splitContour(src subContour, splitCoordinate int, splittingValue float32) (c0, c1 subContour, c0WindingDelta, c1WindingDelta int) {
	if len(src) == 0 {
		return nil, nil, 0, 0
	}
	prevPt := src[len(src)-1]
	for _, pt := range src {
		prevV := axisValue(prevPt.pt, splitCoordinate)
		v := axisValue(pt.pt, splitCoordinate)

		prevB0 := prevV <= splittingValue
		b0 := v <= splittingValue
		prevB1 := prevV >= splittingValue
		b1 := v >= splittingValue

		var splitPt Point
		if prevB0 != b0 || prevB1 != b1 {
			splitPt = computeSplitPoint(prevPt.pt, pt.pt, splitCoordinate, splittingValue)
		}

		if prevB0 != b0 {
			c0 = append(c0, newSplitSubContourPoint(prevPt, pt, splitPt, splitCoordinate, onMaxBoundary))
		}
		if b0 {
			c0 = append(c0, pt)
		}
		if prevB1 != b1 {
			c1 = append(c1, newSplitSubContourPoint(prevPt, pt, splitPt, splitCoordinate, onMinBoundary))
		}
		if b1 {
			c1 = append(c1, pt)
		}

		prevPt = pt
	}

	c0WindingDelta = postProcessSubContour(&c0)
	c1WindingDelta = postProcessSubContour(&c1)
	return c0, c1, c0WindingDelta, c1WindingDelta
}

// postProcessSubContour ports SubPath::post_process_sub_contour: if every
// point of C is a corner point and consecutive corners are always a
// box_next_neighbor step (forwards or backwards), C traces the box
// boundary some integer number of times and contributes only a winding
// bias; such a contour is collapsed to nothing.
func postProcessSubContour(c *subContour) int {
	C := *c
	if len(C) == 0 || !C[len(C)-1].isCornerPoint() {
		return 0
	}

	forwards, backwards := 0, 0
	prevCornerType := C[len(C)-1].cornerPointType
	for _, pt := range C {
		if !pt.isCornerPoint() {
			return 0
		}
		cornerType := pt.cornerPointType
		switch {
		case cornerType == boxNextNeighbor(prevCornerType):
			forwards++
		case prevCornerType == boxNextNeighbor(cornerType):
			backwards++
		default:
			return 0
		}
		prevCornerType = cornerType
	}

	counter := backwards - forwards
	if counter%4 == 0 {
		*c = nil
		return counter / 4
	}
	return 0
}

// split ports SubPath::split: partitions the bounding box at its midpoint
// along the chosen coordinate, splits every contour across the cut, and
// returns the two children with their accumulated winding_start.
func (sp *subPath) split() (b0, b1 *subPath) {
	mid := Point{
		X: 0.5 * (sp.bounds.Min.X + sp.bounds.Max.X),
		Y: 0.5 * (sp.bounds.Min.Y + sp.bounds.Max.Y),
	}
	coord := sp.chooseSplittingCoordinate(mid)
	splitValue := axisValue(mid, coord)

	b0Max, b1Min := sp.bounds.Max, sp.bounds.Min
	if coord == 0 {
		b0Max.X, b1Min.X = splitValue, splitValue
	} else {
		b0Max.Y, b1Min.Y = splitValue, splitValue
	}
	bb0 := boundingBox{Min: sp.bounds.Min, Max: b0Max}
	bb1 := boundingBox{Min: b1Min, Max: sp.bounds.Max}

	var c0s, c1s []subContour
	w0, w1 := sp.windingStart, sp.windingStart
	for _, c := range sp.contours {
		c0, c1, d0, d1 := splitContour(c, coord, splitValue)
		if len(c0) > 0 {
			c0s = append(c0s, c0)
		}
		if len(c1) > 0 {
			c1s = append(c1s, c1)
		}
		w0 += d0
		w1 += d1
	}

	return newInteriorSubPath(bb0, c0s, w0), newInteriorSubPath(bb1, c1s, w1)
}

// shouldSplit ports the recursion-termination rule of §4.2: stop at
// pointsPerSubsetMax points or recursionDepthMax depth. The third stop
// condition, that neither child would shrink (pathological single
// cluster), needs the split result and is checked by FilledPath.build.
func (sp *subPath) shouldSplit(depth int) bool {
	if sp.totalPoints <= pointsPerSubsetMax || depth >= recursionDepthMax {
		return false
	}
	return true
}
