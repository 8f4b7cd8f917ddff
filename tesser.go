package fastuidraw

// perWindingData is an ordered list of vertex indices per winding number,
// triangles packed three-at-a-time in insertion order (§3 PerWindingData).
// A plain map from int to a owned slice is equivalent to the source's
// shared-pointer-keyed map (§9, "Reference counting for per-winding index
// buckets") since there are no true shared lifetimes here.
type perWindingData map[int][]vertexID

func (p perWindingData) addTriangle(winding int, a, b, c vertexID) {
	p[winding] = append(p[winding], a, b, c)
}

// tesser is the shared base of the non-zero and zero tessellation passes
// (§4.4): it owns the per-vertex submission/acceptance loop, the combine
// callback, and the 6-way subdivision: on_begin_polygon/fill_region are
// supplied by the embedding pass via fillPredicate and bucket.
type tesser struct {
	points              *pointHoard
	bucket              func(winding int) int
	fillPred            func(winding int) bool
	data                perWindingData
	triangulationFailed bool

	currentWinding int
	tempVerts      [3]vertexID
	tempCount      int
}

func newTesser(points *pointHoard, fillPred func(int) bool, bucket func(int) int) *tesser {
	return &tesser{
		points:   points,
		fillPred: fillPred,
		bucket:   bucket,
		data:     make(perWindingData),
	}
}

func (t *tesser) beginPolygon(winding int) {
	t.currentWinding = winding
	t.tempCount = 0
}

func (t *tesser) fillPredicate(winding int) bool {
	return t.fillPred(winding)
}

// vertex ports tesser::vertex_callBack / add_vertex_to_polygon: groups
// vertices three at a time and, once a full triangle has arrived, runs it
// through add_triangle's acceptance + 6-way subdivision.
func (t *tesser) vertex(id vertexID) {
	if id == nullVertexID {
		t.triangulationFailed = true
	}
	t.tempVerts[t.tempCount] = id
	t.tempCount++
	if t.tempCount == 3 {
		t.addTriangle(t.tempVerts[0], t.tempVerts[1], t.tempVerts[2])
		t.tempCount = 0
	}
}

// combine ports tesser::combine_callback: weighted average of the four
// source vertices' *original* (un-perturbed) positions.
func (t *tesser) combine(_ Point, neighbors [4]vertexID, weights [4]float64) vertexID {
	var x, y float64
	for i, n := range neighbors {
		if n == nullVertexID {
			continue
		}
		p := t.points.position(n)
		x += weights[i] * float64(p.X)
		y += weights[i] * float64(p.Y)
	}
	return t.points.fetch(Point{X: float32(x), Y: float32(y)})
}

// addTriangle ports tesser::add_triangle plus the emission rules and
// 6-way subdivision of §4.4 "Triangle emission".
func (t *tesser) addTriangle(a, b, c vertexID) {
	if a == nullVertexID || b == nullVertexID || c == nullVertexID {
		t.triangulationFailed = true
		return
	}
	if a == b || b == c || a == c {
		return
	}
	pa, pb, pc := t.points.position(a), t.points.position(b), t.points.position(c)
	if pa == pb || pb == pc || pa == pc {
		return
	}
	area := (pb.X-pa.X)*(pc.Y-pa.Y) - (pc.X-pa.X)*(pb.Y-pa.Y)
	if area <= 0 {
		return
	}

	mAB := midpoint(pa, pb)
	mAC := midpoint(pa, pc)
	mBC := midpoint(pb, pc)
	g := centroid(pa, pb, pc)

	idAB := t.points.fetch(mAB)
	idAC := t.points.fetch(mAC)
	idBC := t.points.fetch(mBC)
	idG := t.points.fetch(g)

	bucket := t.bucket(t.currentWinding)
	t.data.addTriangle(bucket, a, idAB, idG)
	t.data.addTriangle(bucket, a, idG, idAC)
	t.data.addTriangle(bucket, idG, b, idBC)
	t.data.addTriangle(bucket, idAB, b, idG)
	t.data.addTriangle(bucket, idAC, idG, c)
	t.data.addTriangle(bucket, idG, idBC, c)

	for _, id := range [...]vertexID{a, b, c, idAB, idAC, idBC, idG} {
		t.points.addToWindingSet(id, bucket)
	}
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func centroid(a, b, c Point) Point {
	return Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
}

// runNonZeroTesser runs the §4.4.1 pass: fill predicate winding != 0, bucket
// winding+windingStart.
func runNonZeroTesser(points *pointHoard, contours []weightedContour, windingStart int) (perWindingData, bool) {
	t := newTesser(points,
		func(w int) bool { return w != 0 },
		func(w int) int { return w + windingStart },
	)
	failed := tessellate(points, contours, t)
	return t.data, failed || t.triangulationFailed
}

// runZeroTesser runs the §4.4.2 pass: contours plus the sub-path's
// bounding box as an extra CCW boundary contour, fill predicate
// winding == -1, bucket fixed at windingStart regardless of the actual
// (always -1) winding seen.
func runZeroTesser(points *pointHoard, contours []weightedContour, bounds boundingBox, windingStart int) (perWindingData, bool) {
	boundary := boundaryContour(points, bounds)
	all := append(append([]weightedContour(nil), contours...), boundary)

	t := newTesser(points,
		func(w int) bool { return w == -1 },
		func(int) int { return windingStart },
	)
	failed := tessellate(points, all, t)
	return t.data, failed || t.triangulationFailed
}

// boundaryContour builds the sub-path's bounding box as a CCW contour,
// padded in original coordinate space by 1% of each side plus fudgeUnit so
// it strictly encloses every perturbed interior point. The padding ring
// lies outside the path, so it is itself a zero-winding region of this
// pass.
func boundaryContour(points *pointHoard, bounds boundingBox) weightedContour {
	w, h := bounds.size()
	padX := w*0.01 + float32(fudgeUnit)
	padY := h*0.01 + float32(fudgeUnit)
	min := Point{X: bounds.Min.X - padX, Y: bounds.Min.Y - padY}
	max := Point{X: bounds.Max.X + padX, Y: bounds.Max.Y + padY}

	corners := [4]Point{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}
	ids := make([]vertexID, 4)
	for i, p := range corners {
		ids[i] = points.fetch(p)
	}
	return weightedContour{ids: ids, affectsWinding: true}
}
