package fastuidraw

import (
	"context"
	"sync"
)

// subsetNode is one node of the subset tree (§4.5 SubsetPrivate): either a
// leaf or an interior node with two children. Every node, leaf or
// interior, keeps its bounds for clip-plane culling during Select, but
// only a not-yet-baked leaf holds its subPath (contours, winding_start),
// which makeReady releases once the leaf is baked -- an
// interior node's AttributeData, if ever demanded, is the lazy merge of
// its children's, and it has nothing of its own left to bake (§3: "baked
// iff sub_path is null" -- interior nodes never hold one in the first
// place here, rather than holding and ignoring it).
type subsetNode struct {
	id       int
	bounds   boundingBox
	sp       *subPath // nil for interior nodes
	children [2]int   // -1, -1 for a leaf
	parent   int

	data                *AttributeData
	triangulationFailed bool
}

func (n *subsetNode) isLeaf() bool { return n.children[0] == -1 }

// FilledPath is the public entry point (§3 FilledPath): the whole subset
// tree built once from a TessellatedPath.
type FilledPath struct {
	nodes []*subsetNode
	root  int
}

// Subset is a stable handle into a FilledPath's node arena.
type Subset struct {
	path *FilledPath
	ID   int
}

// BoundingBox returns the subset's bounds in original path coordinates.
func (s Subset) BoundingBox() (min, max Point) {
	n := s.path.nodes[s.ID]
	return n.bounds.Min, n.bounds.Max
}

// AttributeData lazily bakes (or merges) and returns this subset's data.
func (s Subset) AttributeData() *AttributeData {
	return s.path.makeReady(s.ID)
}

// TriangulationFailed reports whether baking this subset hit a
// degenerate combine (§7); forces baking as a side effect.
func (s Subset) TriangulationFailed() bool {
	s.path.makeReady(s.ID)
	return s.path.nodes[s.ID].triangulationFailed
}

// NewFilledPath builds the subset tree for p (§4.2, §4.5): recursively
// partition the root subPath until shouldSplit says stop, or until a
// split would shrink neither half (a pathological, tightly
// clustered contour -- subpath.go's shouldSplit deliberately leaves this
// check to the tree builder rather than the split predicate itself).
func NewFilledPath(p TessellatedPath) *FilledPath {
	fp := &FilledPath{}
	fp.root = fp.build(newRootSubPath(p), 0)
	return fp
}

func (fp *FilledPath) build(sp *subPath, depth int) int {
	if sp.shouldSplit(depth) {
		b0, b1 := sp.split()
		if b0.totalPoints < sp.totalPoints || b1.totalPoints < sp.totalPoints {
			id := fp.addNode(&subsetNode{bounds: sp.bounds, children: [2]int{-1, -1}, parent: -1})
			c0 := fp.build(b0, depth+1)
			c1 := fp.build(b1, depth+1)
			fp.nodes[id].children = [2]int{c0, c1}
			fp.nodes[c0].parent = id
			fp.nodes[c1].parent = id
			return id
		}
	}
	return fp.addNode(&subsetNode{bounds: sp.bounds, sp: sp, children: [2]int{-1, -1}, parent: -1})
}

func (fp *FilledPath) addNode(n *subsetNode) int {
	n.id = len(fp.nodes)
	fp.nodes = append(fp.nodes, n)
	return n.id
}

// makeReady ports SubsetPrivate::make_ready / make_ready_from_children:
// bake a leaf directly, or recursively bake and merge an interior node's
// two children; memoized so repeated Select calls never re-bake.
func (fp *FilledPath) makeReady(id int) *AttributeData {
	n := fp.nodes[id]
	if n.data != nil {
		return n.data
	}
	if n.isLeaf() {
		data, failed := buildLeaf(n.sp)
		n.data = data
		n.sp = nil
		n.triangulationFailed = failed
		if failed {
			logger().Warn("fastuidraw: triangulation failed for a subset", "subset", id)
		}
		return n.data
	}
	left := fp.makeReady(n.children[0])
	right := fp.makeReady(n.children[1])
	n.data = mergeAttributeData(left, right)
	n.triangulationFailed = fp.nodes[n.children[0]].triangulationFailed || fp.nodes[n.children[1]].triangulationFailed
	return n.data
}

// BakeAll bakes every leaf's AttributeData concurrently across up to
// parallelism worker goroutines (§5, "ADDED: parallel leaf baking"), then
// bakes interior nodes bottom-up; makeReady on the root after this is
// just memoized lookups and cheap merges. Baking a leaf already under way
// is not preemptible, but ctx is checked between leaves so a cancellation
// stops queuing new work promptly (§5, "No cancellation mechanism is
// required beyond abandoning the object").
func (fp *FilledPath) BakeAll(ctx context.Context, parallelism int) {
	if parallelism < 1 {
		parallelism = 1
	}
	var leaves []int
	for _, n := range fp.nodes {
		if n.isLeaf() {
			leaves = append(leaves, n.id)
		}
	}

	sem := make(chan struct{}, parallelism)
	var wg sync.WaitGroup
	for _, id := range leaves {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(id int) {
			defer wg.Done()
			defer func() { <-sem }()
			fp.makeReady(id)
		}(id)
	}
	wg.Wait()
	if ctx.Err() == nil {
		fp.makeReady(fp.root)
	}
}

// ClipPlane is one half-plane A*x + B*y + C >= 0 (PainterClipEquations'
// representation); Select rejects any subset whose bounding box lies
// entirely on the negative side of any plane.
type ClipPlane struct{ A, B, C float32 }

func (pl ClipPlane) evaluate(p Point) float32 { return pl.A*p.X + pl.B*p.Y + pl.C }

func (pl ClipPlane) boxOutside(min, max Point) bool {
	corners := [4]Point{min, {X: max.X, Y: min.Y}, max, {X: min.X, Y: max.Y}}
	for _, c := range corners {
		if pl.evaluate(c) >= 0 {
			return false
		}
	}
	return true
}

type selectBudget struct {
	maxAttr, maxIdx int
	exhausted       bool
}

// Select walks the subset tree, culling against planes, mirroring
// select_subsets (§4.5); a subtree whose bounding box has zero width or
// zero height is skipped, so a degenerate path selects no subsets at all
// (§7 kind 3). Leaves are baked (not merged interior nodes) so
// that a visible region only ever pays for the geometry it actually
// needs. maxAttributeCount/maxIndexCount (0 means unlimited) are per-node
// limits, not a shared pool (filled_path.cpp:2548 checks
// m_num_attributes/m_largest_index_block against the caller's max on each
// node in isolation): every clip-visible leaf is still selected and
// returned even if it alone exceeds a limit, and selection of its
// siblings continues regardless -- an oversized leaf only raises a
// DiagnosticBudgetExhausted (§7 kind 2), never drops geometry or aborts
// the walk (P5 cover must still hold).
func (fp *FilledPath) Select(planes []ClipPlane, maxAttributeCount, maxIndexCount int) ([]Subset, []Diagnostic) {
	var out []Subset
	var diags []Diagnostic
	budget := &selectBudget{maxAttr: maxAttributeCount, maxIdx: maxIndexCount}
	fp.selectRec(fp.root, planes, budget, &out, &diags)
	if budget.exhausted {
		diags = append(diags, Diagnostic{Kind: DiagnosticBudgetExhausted, Message: "fastuidraw: one or more selected subsets exceeded the attribute/index budget"})
	}
	return out, diags
}

func (fp *FilledPath) selectRec(id int, planes []ClipPlane, budget *selectBudget, out *[]Subset, diags *[]Diagnostic) {
	n := fp.nodes[id]
	min, max := n.bounds.Min, n.bounds.Max
	if w, h := n.bounds.size(); w <= 0 || h <= 0 {
		return // degenerate (zero-width or zero-height) box: nothing to fill
	}
	for _, pl := range planes {
		if pl.boxOutside(min, max) {
			return
		}
	}

	if !n.isLeaf() {
		fp.selectRec(n.children[0], planes, budget, out, diags)
		fp.selectRec(n.children[1], planes, budget, out, diags)
		return
	}

	data := fp.makeReady(id)
	largestIndexBlock := 0
	for _, r := range data.chunks {
		if r.count > largestIndexBlock {
			largestIndexBlock = r.count
		}
	}
	if (budget.maxAttr > 0 && data.NumberAttributes() > budget.maxAttr) ||
		(budget.maxIdx > 0 && largestIndexBlock > budget.maxIdx) {
		budget.exhausted = true
	}

	if n.triangulationFailed {
		*diags = append(*diags, Diagnostic{Kind: DiagnosticTriangulationFailed, Message: "fastuidraw: triangulation failed for a subset", SubsetID: id})
	}
	*out = append(*out, Subset{path: fp, ID: id})
}
