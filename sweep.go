// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package fastuidraw

import "sort"

// weightedContour is one input contour for the arrangement builder: a
// closed ring of pointHoard vertex IDs plus the per-contour affects-
// winding flag named by §4.4's driver protocol (guide boxes and the
// zero-pass boundary box are submitted with affectsWinding=false and
// =true respectively).
type weightedContour struct {
	ids            []vertexID
	affectsWinding bool
}

// sweepDriver is the four-callback driver protocol of §4.4: begin_polygon,
// vertex, combine and fill_predicate.
type sweepDriver interface {
	beginPolygon(winding int)
	vertex(id vertexID)
	combine(pos Point, neighbors [4]vertexID, weights [4]float64) vertexID
	fillPredicate(winding int) bool
}

// activeEdge is a dict key: one mesh edge together with its precomputed
// s-coordinate at the current sweep slab's midpoint t, so dict's edgeLeq
// comparator can stay a pure function of two keys (matching the teacher's
// dict.go, which also compares precomputed keys rather than threading
// sweep state through every comparison).
type activeEdge struct {
	edge  *halfEdge
	sAtMid float64
}

func edgeLeq(a, b *activeEdge) bool {
	return a.sAtMid <= b.sAtMid
}

// tessellate runs the arrangement builder described in SPEC_FULL.md §4.4.7:
// it discovers and splits all edge-edge crossings (pass A), then sweeps
// the now-crossing-free edge set top to bottom building trapezoids tagged
// with their true winding number (pass B), triangulating and submitting
// each through driver. Returns true if any region could not be classified
// (§4.4.3) -- this implementation always manages to classify every region
// it builds, so it returns true only when a combine callback could not
// allocate an ID (defensive; tesser.combine always returns a valid ID).
func tessellate(points *pointHoard, contours []weightedContour, driver sweepDriver) bool {
	m := newMesh()
	for _, c := range contours {
		submitContour(points, m, c)
	}

	failed := splitCrossings(points, m, driver)
	trapezoidate(points, m, driver)
	return failed
}

// submitContour builds one mesh edge per contour edge, fudging every
// vertex occurrence with the pointHoard's running counter as it goes, per
// §4.4 "Vertex submission": the counter increments on every submitted
// vertex regardless of contour.
func submitContour(points *pointHoard, m *mesh, c weightedContour) {
	n := len(c.ids)
	if n < 2 {
		return
	}
	occ := make([]*meshVertex, n)
	for i, id := range c.ids {
		fudge := points.nextFudge()
		s, t := points.converter.apply(points.position(id), fudge)
		occ[i] = &meshVertex{id: id, s: s, t: t}
	}
	for i := 0; i < n; i++ {
		m.makeEdge(occ[i], occ[(i+1)%n], c.affectsWinding)
	}
}

// splitCrossings is pass A: pairwise intersection discovery (documented
// O(n^2) simplification of a full Bentley-Ottmann sweep, see DESIGN.md)
// followed by chained edge splitting through mesh.splitEdge.
func splitCrossings(points *pointHoard, m *mesh, driver sweepDriver) bool {
	type splitPoint struct {
		t float64 // parametric position along the edge, in (0,1)
		v *meshVertex
	}
	splits := make(map[*halfEdge][]splitPoint)
	failed := false

	edges := append([]*halfEdge(nil), m.edges...)
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			e1, e2 := edges[i], edges[j]
			if sharesVertex(e1, e2) {
				continue
			}
			x, ok := segmentIntersection(e1, e2)
			if !ok {
				continue
			}
			w := intersectionWeights(e1, e2, x)
			neighbors := [4]vertexID{e1.orig.id, e1.dest.id, e2.orig.id, e2.dest.id}
			id := driver.combine(invertSweep(points.converter, x.s, x.t), neighbors, w)
			if id == nullVertexID {
				failed = true
				continue
			}
			v := &meshVertex{id: id, s: x.s, t: x.t}
			t1 := edgeParam(e1, x)
			t2 := edgeParam(e2, x)
			splits[e1] = append(splits[e1], splitPoint{t: t1, v: v})
			splits[e2] = append(splits[e2], splitPoint{t: t2, v: v})
		}
	}

	for e, pts := range splits {
		sort.Slice(pts, func(i, j int) bool { return pts[i].t < pts[j].t })
		cur := e
		for _, sp := range pts {
			_, tail := m.splitEdge(cur, sp.v)
			cur = tail
		}
	}
	return failed
}

func sharesVertex(a, b *halfEdge) bool {
	return a.orig == b.orig || a.orig == b.dest || a.dest == b.orig || a.dest == b.dest
}

// segmentIntersection reports whether the open segments e1 and e2 cross,
// and if so the crossing point in sweep space, using the ccw predicate
// ported in geom.go.
func segmentIntersection(e1, e2 *halfEdge) (sweepVertex, bool) {
	a, b := e1.orig.sweepVertex(), e1.dest.sweepVertex()
	c, d := e2.orig.sweepVertex(), e2.dest.sweepVertex()
	d1 := ccw(a, c, d) != ccw(b, c, d)
	d2 := ccw(a, b, c) != ccw(a, b, d)
	if !d1 || !d2 {
		return sweepVertex{}, false
	}
	return edgeIntersect(a, b, c, d), true
}

// edgeParam returns the parametric position of x along e (0 at e.orig, 1
// at e.dest), using whichever axis has more extent for numerical
// stability.
func edgeParam(e *halfEdge, x sweepVertex) float64 {
	ds := e.dest.s - e.orig.s
	dt := e.dest.t - e.orig.t
	if absF(ds) >= absF(dt) {
		if ds == 0 {
			return 0.5
		}
		return (x.s - e.orig.s) / ds
	}
	if dt == 0 {
		return 0.5
	}
	return (x.t - e.orig.t) / dt
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// intersectionWeights computes the 4 combine weights (§4.4 "Combine
// callback"): the crossing point's parametric position along each of the
// two crossing edges, halved so the four weights sum to 1, so the caller
// can average the edges' *original* (un-perturbed) endpoint positions
// instead of the fudged sweep-space ones.
func intersectionWeights(e1, e2 *halfEdge, x sweepVertex) [4]float64 {
	t1 := edgeParam(e1, x)
	t2 := edgeParam(e2, x)
	return [4]float64{(1 - t1) / 2, t1 / 2, (1 - t2) / 2, t2 / 2}
}

func invertSweep(c coordinateConverter, s, t float64) Point {
	x := s/c.scale[0] - c.translate[0]
	y := t/c.scale[1] - c.translate[1]
	return Point{X: float32(x), Y: float32(y)}
}

// trapezoidate is pass B: sweep the (now crossing-free) mesh top to
// bottom, bucketing the arrangement into trapezoids of constant winding
// number between x-adjacent active edges, and hand each to the driver as
// a triangle pair (or single triangle).
func trapezoidate(points *pointHoard, m *mesh, driver sweepDriver) {
	events := collectEvents(m.edges)
	if len(events) < 2 {
		return
	}
	for i := 0; i+1 < len(events); i++ {
		t0, t1 := events[i], events[i+1]
		if t1 <= t0 {
			continue
		}
		mid := (t0 + t1) / 2
		active := activeEdgesAt(m.edges, mid)
		if len(active) == 0 {
			continue
		}
		sortActiveEdges(active, mid)
		emitTrapezoids(points, active, t0, t1, driver)
	}
}

// collectEvents gathers every distinct t (sweep-coordinate) at which an
// edge begins or ends, via the same priority queue type the teacher's
// priorityq.go exports, ensuring events are produced in deterministic
// sweep order (P9).
func collectEvents(edges []*halfEdge) []float64 {
	q := pqNewPriorityQ()
	for _, e := range edges {
		if e.orig.t == e.dest.t {
			continue // horizontal in sweep space; contributes no slab
		}
		pqInsert(q, e.orig.sweepVertex())
		pqInsert(q, e.dest.sweepVertex())
	}
	var ts []float64
	for !pqIsEmpty(q) {
		v := pqExtractMin(q)
		ts = append(ts, v.t)
	}
	sort.Float64s(ts)
	out := ts[:0]
	for i, v := range ts {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func activeEdgesAt(edges []*halfEdge, mid float64) []*activeEdge {
	var active []*activeEdge
	for _, e := range edges {
		tMin, tMax := e.orig.t, e.dest.t
		if tMin > tMax {
			tMin, tMax = tMax, tMin
		}
		if tMin >= mid || tMax <= mid {
			continue
		}
		active = append(active, &activeEdge{edge: e, sAtMid: sAt(e, mid)})
	}
	return active
}

func sAt(e *halfEdge, t float64) float64 {
	dt := e.dest.t - e.orig.t
	if dt == 0 {
		return e.orig.s
	}
	frac := (t - e.orig.t) / dt
	return e.orig.s + frac*(e.dest.s-e.orig.s)
}

// sortActiveEdges orders active left to right using the dict structure
// (teacher's dict.go, generalized), exercising it as the sweep status.
func sortActiveEdges(active []*activeEdge, mid float64) {
	d := dictNewDict(edgeLeq)
	for _, a := range active {
		dictInsert(d, a)
	}
	i := 0
	for n := dictMin(d); dictKey(n) != nil; n = dictSucc(n) {
		active[i] = dictKey(n)
		i++
	}
}

// edgeWindingContribution is the crossing-number-rule contribution of an
// edge to the winding number of the region to its right, per the
// "Open question" resolution in DESIGN.md: guide-box (affectsWinding =
// false) edges never contribute, regardless of direction.
func edgeWindingContribution(e *halfEdge) int {
	if !e.affectsWinding {
		return 0
	}
	if e.orig.t < e.dest.t {
		return 1
	}
	if e.orig.t > e.dest.t {
		return -1
	}
	return 0
}

func emitTrapezoids(points *pointHoard, active []*activeEdge, t0, t1 float64, driver sweepDriver) {
	running := 0
	for i := 0; i < len(active); i++ {
		if i > 0 {
			left, right := active[i-1].edge, active[i].edge
			if driver.fillPredicate(running) {
				emitTrapezoid(points, left, right, t0, t1, running, driver)
			}
		}
		running += edgeWindingContribution(active[i].edge)
	}
}

func emitTrapezoid(points *pointHoard, left, right *halfEdge, t0, t1 float64, winding int, driver sweepDriver) {
	c0 := cornerID(points, left, t0)
	c1 := cornerID(points, left, t1)
	c2 := cornerID(points, right, t1)
	c3 := cornerID(points, right, t0)

	driver.beginPolygon(winding)
	emitTriangle(points, c0, c2, c1, driver)
	emitTriangle(points, c0, c3, c2, driver)
}

// cornerID resolves the mesh vertex of e at sweep-coordinate t to a
// pointHoard ID, reusing e's own endpoint when t matches it exactly
// (the common case) instead of fabricating a near-duplicate point.
func cornerID(points *pointHoard, e *halfEdge, t float64) vertexID {
	if t == e.orig.t {
		return e.orig.id
	}
	if t == e.dest.t {
		return e.dest.id
	}
	s := sAt(e, t)
	return points.fetch(invertSweep(points.converter, s, t))
}

// emitTriangle applies the acceptance rules of §4.4 ("Triangle emission")
// before handing the triangle's three vertex calls to driver.
func emitTriangle(points *pointHoard, a, b, c vertexID, driver sweepDriver) {
	if a == nullVertexID || b == nullVertexID || c == nullVertexID {
		return
	}
	if a == b || b == c || a == c {
		return
	}
	pa, pb, pc := points.position(a), points.position(b), points.position(c)
	if pa == pb || pb == pc || pa == pc {
		return
	}
	signedArea := (pb.X-pa.X)*(pc.Y-pa.Y) - (pc.X-pa.X)*(pb.Y-pa.Y)
	if signedArea <= 0 {
		return
	}
	driver.vertex(a)
	driver.vertex(b)
	driver.vertex(c)
}
