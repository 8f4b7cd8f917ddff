package fastuidraw

// TessellatedPath is the input contract: a path already flattened into
// polyline contours by an earlier stage of the rendering pipeline. A
// SubPath is built once from a TessellatedPath at the tree root; the
// interface is never touched again afterward.
type TessellatedPath interface {
	// NumberContours returns the number of closed contours in the path.
	NumberContours() int
	// NumberEdges returns the number of polyline edges of the given contour.
	NumberEdges(contour int) int
	// EdgeRange returns the half-open range [begin, end) of point indices
	// (as consumed by PointAt) making up the given edge of the given
	// contour. Consecutive edges share an endpoint.
	EdgeRange(contour, edge int) (begin, end int)
	// PointAt returns the point at the given global point index.
	PointAt(index int) Point
	// BoundingBox returns the axis-aligned bounding box of the whole path.
	BoundingBox() (min, max Point)
}

// flatten walks a TessellatedPath into the plain, index-free contour shape
// subPath construction needs: one closed polyline per contour, last point
// implicitly joined back to the first.
func flattenPath(p TessellatedPath) [][]Point {
	contours := make([][]Point, p.NumberContours())
	for c := range contours {
		var pts []Point
		edges := p.NumberEdges(c)
		for e := 0; e < edges; e++ {
			begin, end := p.EdgeRange(c, e)
			for i := begin; i < end; i++ {
				pts = append(pts, p.PointAt(i))
			}
		}
		contours[c] = pts
	}
	return contours
}
