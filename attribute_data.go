package fastuidraw

// indexRange is a (start, count) slice into a single shared index buffer;
// this is how the four standard fill-rule chunks and every per-winding
// chunk all name a region of the *same* three-region buffer described in
// §4.5, rather than each owning a separate copy.
type indexRange struct {
	start, count int
}

// AttributeData is one baked leaf or merged-interior mesh (§3, §6): a
// vertex position array, a parallel per-vertex winding set (used to
// derive the AA boundary flag at DataWriter time, §4.6), a single shared
// index buffer laid out as [odd | even-nonzero | zero] (§4.5), and the
// table of named chunks into that buffer.
type AttributeData struct {
	positions   []Point
	windingSets []windingSet
	indices     []vertexID
	chunks      map[int]indexRange
	windings    []int // sorted, de-duplicated observed winding numbers
}

func (d *AttributeData) NumberAttributes() int { return len(d.positions) }

func (d *AttributeData) NumberIndexChunks() int { return len(d.chunks) }

func (d *AttributeData) NumberIndices(chunk int) int {
	return d.chunks[chunk].count
}

func (d *AttributeData) indicesOf(chunk int) []vertexID {
	r := d.chunks[chunk]
	return d.indices[r.start : r.start+r.count]
}

// mergeAttributeData ports AttributeDataMerger: concatenates two leaves'
// (or two already-merged interior nodes') vertex arrays and index
// buffers, offsetting the second's indices by the first's vertex count,
// and unions their per-vertex winding sets and chunk tables chunk-by-
// chunk (§4.5 "make_ready on an interior node").
func mergeAttributeData(a, b *AttributeData) *AttributeData {
	out := &AttributeData{
		positions:   make([]Point, 0, len(a.positions)+len(b.positions)),
		windingSets: make([]windingSet, 0, len(a.windingSets)+len(b.windingSets)),
		indices:     make([]vertexID, 0, len(a.indices)+len(b.indices)),
		chunks:      make(map[int]indexRange),
	}
	out.positions = append(out.positions, a.positions...)
	out.positions = append(out.positions, b.positions...)
	out.windingSets = append(out.windingSets, a.windingSets...)
	out.windingSets = append(out.windingSets, b.windingSets...)

	offset := vertexID(len(a.positions))
	out.indices = append(out.indices, a.indices...)
	bBase := len(out.indices)
	for _, idx := range b.indices {
		out.indices = append(out.indices, idx+offset)
	}

	chunkIDs := make(map[int]struct{})
	for c := range a.chunks {
		chunkIDs[c] = struct{}{}
	}
	for c := range b.chunks {
		chunkIDs[c] = struct{}{}
	}
	for c := range chunkIDs {
		ra, oka := a.chunks[c]
		rb, okb := b.chunks[c]
		if oka && okb && ra.count > 0 && rb.count > 0 {
			// Neither half's sub-range is contiguous with the other inside
			// the newly concatenated buffer (a's indices end where b's
			// begin only when both are the *whole* buffer); re-home both
			// pieces immediately after the buffer by appending a fresh
			// contiguous copy and recording that instead.
			start := len(out.indices)
			out.indices = append(out.indices, a.indices[ra.start:ra.start+ra.count]...)
			for _, idx := range b.indices[rb.start : rb.start+rb.count] {
				out.indices = append(out.indices, idx+offset)
			}
			out.chunks[c] = indexRange{start: start, count: ra.count + rb.count}
		} else if oka && ra.count > 0 {
			out.chunks[c] = indexRange{start: ra.start, count: ra.count}
		} else if okb && rb.count > 0 {
			out.chunks[c] = indexRange{start: bBase + rb.start, count: rb.count}
		}
	}
	out.windings = mergeSortedUnique(a.windings, b.windings)
	return out
}

func mergeSortedUnique(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
