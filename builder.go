package fastuidraw

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// buildLeaf bakes one leaf subPath into an AttributeData (§4.5 "bake a
// leaf"): build its pointHoard, run both tessellation passes, merge their
// per-winding buckets, and pack the three-region index buffer.
func buildLeaf(sp *subPath) (*AttributeData, bool) {
	points := newPointHoard(sp.bounds)

	var contours []weightedContour
	for _, c := range sp.contours {
		if len(c) == 0 {
			continue
		}
		ids := make([]vertexID, len(c))
		for i, sc := range c {
			ids[i] = points.fetch(sc.pt)
		}
		contours = append(contours, weightedContour{ids: ids, affectsWinding: true})
	}

	if enableGuidingBoxes {
		for _, c := range sp.contours {
			pts := make([]Point, len(c))
			for i, sc := range c {
				pts[i] = sc.pt
			}
			for _, box := range generateGuideBoxes(pts) {
				corners := box.corners()
				ids := make([]vertexID, len(corners))
				for i, p := range corners {
					ids[i] = points.fetch(p)
				}
				contours = append(contours, weightedContour{ids: ids, affectsWinding: false})
			}
		}
	}

	nz, failedNZ := runNonZeroTesser(points, contours, sp.windingStart)
	z, failedZ := runZeroTesser(points, contours, sp.bounds, sp.windingStart)

	merged := make(perWindingData, len(nz)+len(z))
	for k, v := range nz {
		merged[k] = append(merged[k], v...)
	}
	for k, v := range z {
		merged[k] = append(merged[k], v...)
	}

	data := fillIndices(points, merged)
	return data, failedNZ || failedZ
}

// fillIndices ports builder::fill_indices. Every observed bucket is
// classified purely by the literal integer value of its key -- key == 0
// is the zero region, otherwise its parity picks odd or even-nonzero --
// regardless of which tessellation pass produced it (the zero pass's
// bucket key is windingStart, which only lands in the zero region when
// windingStart happens to be 0). Buckets are packed back
// to back within their region in ascending-key order, mirroring the
// original's std::map iteration; Go map order is randomized, so the keys
// are explicitly sorted first to keep the layout deterministic (P9).
func fillIndices(points *pointHoard, buckets perWindingData) *AttributeData {
	keys := maps.Keys(buckets)
	slices.Sort(keys)

	numOdd, numEvenNonZero, numZero := 0, 0, 0
	for _, k := range keys {
		n := len(buckets[k])
		switch {
		case k == 0:
			numZero += n
		case k%2 != 0:
			numOdd += n
		default:
			numEvenNonZero += n
		}
	}
	evenNonZeroStart := numOdd
	zeroStart := numOdd + numEvenNonZero
	total := zeroStart + numZero

	indices := make([]vertexID, total)
	currentOdd, currentEven, currentZero := 0, evenNonZeroStart, zeroStart
	chunks := make(map[int]indexRange, len(keys)+4)

	for _, k := range keys {
		v := buckets[k]
		var start int
		switch {
		case k == 0:
			start = currentZero
			currentZero += len(v)
		case k%2 != 0:
			start = currentOdd
			currentOdd += len(v)
		default:
			start = currentEven
			currentEven += len(v)
		}
		copy(indices[start:], v)
		chunks[chunkFromWindingNumber(k)] = indexRange{start: start, count: len(v)}
	}

	// The four standard chunks name fixed sub-arrays of the same buffer
	// (§4.5): nonzero = odd+even-nonzero, odd-even = odd only,
	// complement-nonzero = zero only, complement-odd-even = even-nonzero+zero.
	chunks[standardChunk(FillRuleNonZero)] = indexRange{start: 0, count: zeroStart}
	chunks[standardChunk(FillRuleOddEven)] = indexRange{start: 0, count: evenNonZeroStart}
	chunks[standardChunk(FillRuleComplementNonZero)] = indexRange{start: zeroStart, count: total - zeroStart}
	chunks[standardChunk(FillRuleComplementOddEven)] = indexRange{start: evenNonZeroStart, count: total - evenNonZeroStart}

	positions := make([]Point, len(points.pts))
	windingSets := make([]windingSet, len(points.pts))
	for i, fp := range points.pts {
		positions[i] = fp.pos
		ws := make([]int, 0, len(fp.windings))
		for w := range fp.windings {
			ws = append(ws, w)
		}
		windingSets[i] = extractFromSet(ws)
	}

	return &AttributeData{
		positions:   positions,
		windingSets: windingSets,
		indices:     indices,
		chunks:      chunks,
		windings:    keys,
	}
}
