package fastuidraw

// Attribute is one emitted vertex (§6): position plus the AA boundary
// flag, computed at write time (not baked into AttributeData, since the
// same baked mesh is shared across every fill rule a caller might later
// request of it).
type Attribute struct {
	X, Y         float32
	BoundaryFlag float32 // 1.0 interior, 0.0 on the active fill rule's boundary
}

// indexChunkRef names one (subset, chunk-within-that-subset's
// AttributeData) pair; DataWriter's index chunks enumerate these rather
// than the raw chunk IDs of §4.5, since the same chunk ID is reused
// across every selected subset's independently baked buffer.
type indexChunkRef struct {
	subset int
	chunk  int
}

// DataWriter is a read-only view (§6) over a selected subset list, baked
// for one fill rule: compute_writer's two overloads (FillRule,
// StandardFillRule) both end up here.
type DataWriter struct {
	subsets []Subset
	rule    FillRule
	refs    []indexChunkRef
}

// NewDataWriter builds a DataWriter for subsets (as returned by
// FilledPath.Select) under rule.
func NewDataWriter(subsets []Subset, rule FillRule) *DataWriter {
	w := &DataWriter{subsets: subsets, rule: rule}
	w.refs = w.buildChunkRefs()
	return w
}

// NewDataWriterStandard adapts a StandardFillRule (the other
// compute_writer overload, §6).
func NewDataWriterStandard(subsets []Subset, rule StandardFillRule) *DataWriter {
	return NewDataWriter(subsets, rule.Rule())
}

// buildChunkRefs enumerates, per subset, either the one reserved chunk
// for a recognized standard rule, or -- for a caller-supplied custom
// predicate -- one chunk per distinct winding number the predicate
// selects (chunkFromWindingNumber, §4.5).
func (w *DataWriter) buildChunkRefs() []indexChunkRef {
	var refs []indexChunkRef
	std := chunkFromFillRule(w.rule)
	for i, s := range w.subsets {
		data := s.AttributeData()
		if std >= 0 {
			if data.NumberIndices(std) > 0 {
				refs = append(refs, indexChunkRef{subset: i, chunk: std})
			}
			continue
		}
		for _, winding := range data.windings {
			if !w.rule(winding) {
				continue
			}
			c := chunkFromWindingNumber(winding)
			if data.NumberIndices(c) > 0 {
				refs = append(refs, indexChunkRef{subset: i, chunk: c})
			}
		}
	}
	return refs
}

func (w *DataWriter) NumberAttributeChunks() int { return len(w.subsets) }

func (w *DataWriter) NumberAttributes(attribChunk int) int {
	return w.subsets[attribChunk].AttributeData().NumberAttributes()
}

func (w *DataWriter) NumberIndexChunks() int { return len(w.refs) }

func (w *DataWriter) NumberIndices(indexChunk int) int {
	r := w.refs[indexChunk]
	return w.subsets[r.subset].AttributeData().NumberIndices(r.chunk)
}

// AttributeChunkSelection reports which attribute chunk an index chunk's
// indices are drawn against (§6).
func (w *DataWriter) AttributeChunkSelection(indexChunk int) int {
	return w.refs[indexChunk].subset
}

// WriteIndices copies one index chunk into dst, biasing every index by
// attribOffset so a caller packing several attribute chunks into one
// contiguous vertex buffer only has to track a running offset.
func (w *DataWriter) WriteIndices(dst []uint32, indexChunk int, attribOffset uint32) {
	r := w.refs[indexChunk]
	src := w.subsets[r.subset].AttributeData().indicesOf(r.chunk)
	for i, id := range src {
		dst[i] = uint32(id) + attribOffset
	}
}

// WriteAttributes fills dst with attribChunk's vertices, computing each
// one's boundary flag from its baked winding set against the complement
// of w.rule (§4.6): a vertex is on the boundary iff it is incident to at
// least one triangle whose winding the active rule does not select.
func (w *DataWriter) WriteAttributes(dst []Attribute, attribChunk int) {
	data := w.subsets[attribChunk].AttributeData()
	lo, hi := 0, 0
	if len(data.windings) > 0 {
		lo, hi = data.windings[0], data.windings[len(data.windings)-1]
	}
	complement := extractFromFillRule(func(winding int) bool { return !w.rule(winding) }, lo, hi)
	for i, p := range data.positions {
		flag := float32(1)
		if haveCommonBit(data.windingSets[i], complement) {
			flag = 0
		}
		dst[i] = Attribute{X: p.X, Y: p.Y, BoundaryFlag: flag}
	}
}
