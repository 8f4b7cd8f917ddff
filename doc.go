// Package fastuidraw implements the filled-path tessellation core of a 2D
// vector graphics engine: it converts a tessellated (polyline-approximated)
// path into triangle meshes keyed by winding number, organized into a
// recursively splittable spatial hierarchy so a renderer can request only
// the portion of the mesh that intersects a clip region.
//
// The pipeline, leaves first, is:
//
//	TessellatedPath -> SubPath (root) -> recursive split into a SubPath tree
//	  -> per-leaf PointHoard + tessellation pass -> per-node baked mesh
//	  -> subset tree -> DataWriter -> renderer
//
// Tessellation itself does not depend on libGLU or cgo: it is a native Go
// sweep-line arrangement builder (see sweep.go) modeled on the classic GLU
// tessellator architecture (an edge dictionary for sweep status, a vertex
// event priority queue, and a half-edge mesh), generating triangles tagged
// with the winding number of the region they belong to.
//
// The package is single-threaded and synchronous per FilledPath; see
// FilledPath.BakeAll for optional parallel leaf baking.
package fastuidraw
