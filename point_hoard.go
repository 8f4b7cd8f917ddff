package fastuidraw

// vertexID indexes into a pointHoard's FillPoint table. nullVertexID is the
// sentinel "no vertex" used by the tessellator's combine/vertex callbacks
// when a region could not be classified (§4.4.3).
type vertexID uint32

const nullVertexID vertexID = ^vertexID(0)

// fillPoint is a stored vertex: its position plus the set of winding
// numbers of every triangle emitted incident on it (§3 FillPoint, §4.4
// triangle emission, §4.6 boundary marking).
type fillPoint struct {
	pos      Point
	windings map[int]struct{}
}

func (f *fillPoint) addWinding(w int) {
	if f.windings == nil {
		f.windings = make(map[int]struct{}, 1)
	}
	f.windings[w] = struct{}{}
}

// pointHoard deduplicates vertices by their quantized integer coordinates
// and assigns dense IDs; it owns the vertex table shared across a single
// leaf's tessellation run (§4.3).
type pointHoard struct {
	converter coordinateConverter
	lookup    map[[2]int32]vertexID
	pts       []fillPoint
	// fudgeCounter is the monotonically increasing per-vertex counter fed
	// to CoordinateConverter.apply (§4.1); it increments on every vertex
	// *submitted to the tessellator*, not on every fetch (fetch may return
	// an existing ID without consuming a counter value).
	fudgeCounter uint32
}

func newPointHoard(bounds boundingBox) *pointHoard {
	return &pointHoard{
		converter: newCoordinateConverter(bounds),
		lookup:    make(map[[2]int32]vertexID),
	}
}

// fetch ports PointHoard::fetch: compute iapply(p); return the existing ID
// if present, else allocate a new FillPoint.
func (h *pointHoard) fetch(p Point) vertexID {
	key := h.converter.iapply(p)
	if id, ok := h.lookup[key]; ok {
		return id
	}
	id := vertexID(len(h.pts))
	h.pts = append(h.pts, fillPoint{pos: p})
	h.lookup[key] = id
	return id
}

func (h *pointHoard) position(id vertexID) Point {
	return h.pts[id].pos
}

func (h *pointHoard) addToWindingSet(id vertexID, winding int) {
	h.pts[id].addWinding(winding)
}

func (h *pointHoard) nextFudge() uint32 {
	c := h.fudgeCounter
	h.fudgeCounter++
	return c
}

// --- Guide boxes (§4.3, disabled by default) ---
//
// pointHoardConstants mirrors PointHoardConstants in the original. The
// facility groups every pointsPerGuidingBox consecutive points of a
// contour into a small bounding-box "no-op" contour fed to the
// tessellator purely to localize where the sweep line creates triangles;
// it is orthogonal to correctness and left disabled, as in the source.
const (
	pointsPerGuidingBox       = 16
	minPointsPerGuidingBox    = 4
	guidingBoxesPerGuidingBox = 8
	enableGuidingBoxes        = false
)

// guideBox is a zero-winding axis-aligned rectangle contour, emitted to
// the tessellator with affectsWinding=false.
type guideBox struct {
	min, max Point
}

// generateGuideBoxes groups a contour's points into boxes of
// pointsPerGuidingBox points, then recursively groups guidingBoxesPerGuidingBox
// boxes into boxes-of-boxes, per §4.3; only the last level built is
// returned. Returns nil unless guide boxes are enabled.
func generateGuideBoxes(pts []Point) []guideBox {
	if !enableGuidingBoxes || len(pts) == 0 {
		return nil
	}
	boxes := groupIntoBoxes(pts, pointsPerGuidingBox, minPointsPerGuidingBox)
	for len(boxes) > 1 {
		corners := make([]Point, len(boxes))
		for i, b := range boxes {
			corners[i] = b.min // one representative corner suffices to group
		}
		next := groupBoxesIntoBoxes(boxes, guidingBoxesPerGuidingBox)
		if len(next) >= len(boxes) {
			break
		}
		boxes = next
		_ = corners
	}
	return boxes
}

func groupIntoBoxes(pts []Point, groupSize, minTrailing int) []guideBox {
	var boxes []guideBox
	i := 0
	for i < len(pts) {
		end := i + groupSize
		if end > len(pts) {
			end = len(pts)
		}
		// merge a too-small trailing group into the previous box.
		if len(pts)-end < minTrailing && end != len(pts) {
			end = len(pts)
		}
		bb := emptyBoundingBox()
		for _, p := range pts[i:end] {
			bb.unionPoint(p)
		}
		boxes = append(boxes, guideBox{min: bb.Min, max: bb.Max})
		i = end
	}
	return boxes
}

func groupBoxesIntoBoxes(boxes []guideBox, groupSize int) []guideBox {
	var out []guideBox
	for i := 0; i < len(boxes); i += groupSize {
		end := i + groupSize
		if end > len(boxes) {
			end = len(boxes)
		}
		bb := emptyBoundingBox()
		for _, b := range boxes[i:end] {
			bb.unionPoint(b.min)
			bb.unionPoint(b.max)
		}
		out = append(out, guideBox{min: bb.Min, max: bb.Max})
	}
	return out
}

// corners returns the 4 CCW corners of a guide box as a closed contour.
func (b guideBox) corners() [4]Point {
	return [4]Point{
		{X: b.min.X, Y: b.min.Y},
		{X: b.max.X, Y: b.min.Y},
		{X: b.max.X, Y: b.max.Y},
		{X: b.min.X, Y: b.max.Y},
	}
}
