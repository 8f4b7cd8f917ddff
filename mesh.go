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

// meshVertex is one occurrence of a pointHoard vertex in sweep space. The
// same underlying vertexID can appear as several distinct meshVertex
// occurrences (once per contour edge endpoint it is used as), each with
// its own fudged (s, t); pointer identity of a meshVertex is what "same
// occurrence" means below, not equality of id.
type meshVertex struct {
	id   vertexID
	s, t float64
}

func (v *meshVertex) sweepVertex() *sweepVertex {
	return &sweepVertex{s: v.s, t: v.t, id: v.id}
}

// halfEdge is a directed edge of the planar subdivision being assembled by
// sweep.go. It mirrors the teacher's mesh.go edge record (orig/dest/sym)
// generalized from C struct pointers to native ones; faces are not
// represented explicitly because sweep.go's trapezoid-sweep triangulator
// (DESIGN.md) never needs to walk a face loop, only to split edges at
// discovered intersections.
type halfEdge struct {
	orig, dest     *meshVertex
	sym            *halfEdge
	affectsWinding bool
}

// mesh owns the current set of (mutually non-crossing, once splitting is
// complete) edges for one tessellation run.
type mesh struct {
	edges []*halfEdge
}

func newMesh() *mesh {
	return &mesh{}
}

// makeEdge creates a new edge orig->dest plus its symmetric dest->orig,
// mirroring tessMeshMakeEdge, and registers it with the mesh.
func (m *mesh) makeEdge(orig, dest *meshVertex, affectsWinding bool) *halfEdge {
	e := &halfEdge{orig: orig, dest: dest, affectsWinding: affectsWinding}
	sym := &halfEdge{orig: dest, dest: orig, affectsWinding: affectsWinding}
	e.sym, sym.sym = sym, e
	m.edges = append(m.edges, e)
	return e
}

// splitEdge replaces e (orig->dest) with two edges orig->v and v->dest,
// mirroring tessMeshSplitEdge / tessMeshAddEdgeVertex. e is removed from
// the mesh's edge list and the two new edges are appended; the caller is
// responsible for feeding further split points into the returned tail
// edge to build a multi-point split chain.
func (m *mesh) splitEdge(e *halfEdge, v *meshVertex) (head, tail *halfEdge) {
	head = m.makeEdge(e.orig, v, e.affectsWinding)
	tail = m.makeEdge(v, e.dest, e.affectsWinding)
	m.deleteEdge(e)
	return head, tail
}

// deleteEdge removes e from the mesh, mirroring tessMeshDelete.
func (m *mesh) deleteEdge(e *halfEdge) {
	for i, cur := range m.edges {
		if cur == e {
			m.edges = append(m.edges[:i], m.edges[i+1:]...)
			return
		}
	}
}
