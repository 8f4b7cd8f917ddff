package fastuidraw

// Point is a single fp32 coordinate pair as produced by a path tessellator.
type Point struct {
	X, Y float32
}

// boundingBox is an axis-aligned box over Points. A box from
// emptyBoundingBox has Empty true until the first call to unionPoint; the
// zero value is not empty (it is the single point at the origin).
type boundingBox struct {
	Min, Max Point
	Empty    bool
}

func emptyBoundingBox() boundingBox {
	return boundingBox{Empty: true}
}

func (b *boundingBox) unionPoint(p Point) {
	if b.Empty {
		b.Min, b.Max = p, p
		b.Empty = false
		return
	}
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

func (b *boundingBox) unionBox(o boundingBox) {
	if o.Empty {
		return
	}
	b.unionPoint(o.Min)
	b.unionPoint(o.Max)
}

// size returns width and height; zero for an empty box.
func (b boundingBox) size() (w, h float32) {
	if b.Empty {
		return 0, 0
	}
	return b.Max.X - b.Min.X, b.Max.Y - b.Min.Y
}

// intersects reports whether two boxes overlap (touching is an overlap).
func (b boundingBox) intersects(o boundingBox) bool {
	if b.Empty || o.Empty {
		return false
	}
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	return true
}
