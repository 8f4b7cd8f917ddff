//go:build example

package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	fastuidraw "github.com/XoDeR/fastuidraw"
)

// starPath is a hand-built TessellatedPath: a single five-point star
// contour, one edge per consecutive pair of points (closing back to the
// first), matching the shape the teacher's own cgo example tessellated.
type starPath struct {
	pts []fastuidraw.Point
}

func (p *starPath) NumberContours() int      { return 1 }
func (p *starPath) NumberEdges(int) int      { return len(p.pts) }
func (p *starPath) EdgeRange(_, e int) (int, int) { return e, e + 1 }
func (p *starPath) PointAt(i int) fastuidraw.Point { return p.pts[i] }
func (p *starPath) BoundingBox() (min, max fastuidraw.Point) {
	min, max = p.pts[0], p.pts[0]
	for _, pt := range p.pts[1:] {
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
	return min, max
}

type game struct {
	writer *fastuidraw.DataWriter
}

func (g *game) Update() error { return nil }

func (g *game) Draw(screen *ebiten.Image) {
	for ic := 0; ic < g.writer.NumberIndexChunks(); ic++ {
		ac := g.writer.AttributeChunkSelection(ic)

		attrib := make([]fastuidraw.Attribute, g.writer.NumberAttributes(ac))
		g.writer.WriteAttributes(attrib, ac)

		vertices := make([]ebiten.Vertex, len(attrib))
		for i, a := range attrib {
			// Map the star's [-1.6, 3] model space onto the window and
			// leave the boundary flag available for an AA shader to
			// consume as a custom vertex attribute; DrawTriangles only
			// reads position and color here.
			vertices[i] = ebiten.Vertex{
				DstX:   200 + a.X*60,
				DstY:   200 + a.Y*60,
				SrcX:   1,
				SrcY:   1,
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			}
		}

		indices := make([]uint16, g.writer.NumberIndices(ic))
		idx32 := make([]uint32, len(indices))
		g.writer.WriteIndices(idx32, ic, 0)
		for i, v := range idx32 {
			indices[i] = uint16(v)
		}

		screen.DrawTriangles(vertices, indices, whitePixel(), nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 400, 400
}

func whitePixel() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds()).(*ebiten.Image)
}

func main() {
	path := &starPath{pts: []fastuidraw.Point{
		{X: 0.0, Y: 3.0},
		{X: -1.0, Y: 0.0},
		{X: 1.6, Y: 1.9},
		{X: -1.6, Y: 1.9},
		{X: 1.0, Y: 0.0},
	}}

	fp := fastuidraw.NewFilledPath(path)
	subsets, diags := fp.Select(nil, 0, 0)
	for _, d := range diags {
		fmt.Printf("diagnostic: %+v\n", d)
	}

	g := &game{writer: fastuidraw.NewDataWriter(subsets, fastuidraw.NonZeroFillRule)}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
