package fastuidraw

// Constants mirroring CoordinateConverterConstants in the original: the
// sweep-line arithmetic below runs on a fp64 grid of side 2^log2BoxDim, and
// each distinct point gets a deterministic sub-grid perturbation of size
// 2^-negativeLog2Fudge so that nominally-coincident input vertices (shared
// contour endpoints aside) still compare as distinct under vertLeq/transLeq,
// which keeps the sweep from having to special-case exact ties.
const (
	log2BoxDim        = 22
	negativeLog2Fudge = 20
	boxDim            = 1 << log2BoxDim
)

var fudgeUnit = 1.0 / float64(uint64(1)<<negativeLog2Fudge)

// coordinateConverter maps a path's fp32 coordinate space onto the fp64
// sweep grid [0, boxDim] x [0, boxDim], so downstream geometric predicates
// (geom.go) run at a fixed, numerically well-behaved scale regardless of
// the input path's native units.
type coordinateConverter struct {
	translate [2]float64
	scale     [2]float64
}

func newCoordinateConverter(bbox boundingBox) coordinateConverter {
	var c coordinateConverter
	min, max := bbox.Min, bbox.Max
	sz := [2]float64{float64(max.X - min.X), float64(max.Y - min.Y)}
	c.translate = [2]float64{-float64(min.X), -float64(min.Y)}
	for i := 0; i < 2; i++ {
		if sz[i] > 0 {
			c.scale[i] = float64(boxDim) / sz[i]
		} else {
			c.scale[i] = 1.0
		}
	}
	return c
}

// apply maps p into sweep space, adding the fudge offset for fudgeCount
// (normally a monotonically increasing per-point counter; pass 0 for no
// perturbation, e.g. when re-deriving a position that must land exactly on
// an already-placed point).
func (c coordinateConverter) apply(p Point, fudgeCount uint32) (s, t float64) {
	fudge := float64(fudgeCount) * fudgeUnit
	s = (float64(p.X)+c.translate[0])*c.scale[0] + fudge
	t = (float64(p.Y)+c.translate[1])*c.scale[1] + fudge
	return s, t
}

// iapply is apply with no fudge, truncated to the integer sweep grid; used
// to build the coincident-point lookup key in pointHoard.
func (c coordinateConverter) iapply(p Point) [2]int32 {
	s, t := c.apply(p, 0)
	return [2]int32{int32(s), int32(t)}
}
