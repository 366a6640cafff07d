package skirt

// Edge is an undirected pair of vertex indices. EdgeCounts keeps the
// orientation an edge was first seen with.
type Edge [2]int

func (this Edge) Reversed() Edge {
	return Edge{this[1], this[0]}
}

// EdgeCounts records how many triangles use each edge, in the order the
// edges were first seen. The order makes boundary extraction repeatable.
type EdgeCounts struct {
	index  map[Edge]int
	edges  []Edge
	counts []int
}

// CountEdges generates the three edges of every triangle in a stride-3
// index list and counts their uses.
func CountEdges(triangles []int) *EdgeCounts {
	this := &EdgeCounts{
		index: make(map[Edge]int, len(triangles)),
	}

	for a := 0; a+2 < len(triangles); a += 3 {
		this.Add(Edge{triangles[a], triangles[a+1]})
		this.Add(Edge{triangles[a+1], triangles[a+2]})
		this.Add(Edge{triangles[a+2], triangles[a]})
	}

	return this
}

// Add increments the use count of e, matching either orientation.
func (this *EdgeCounts) Add(e Edge) {
	if i, ok := this.index[e]; ok {
		this.counts[i]++
		return
	}
	if i, ok := this.index[e.Reversed()]; ok {
		this.counts[i]++
		return
	}

	this.index[e] = len(this.edges)
	this.edges = append(this.edges, e)
	this.counts = append(this.counts, 1)
}

// Count returns the number of triangles using e in either orientation.
func (this *EdgeCounts) Count(e Edge) int {
	if i, ok := this.index[e]; ok {
		return this.counts[i]
	}
	if i, ok := this.index[e.Reversed()]; ok {
		return this.counts[i]
	}

	return 0
}

// Len returns the number of distinct edges.
func (this *EdgeCounts) Len() int {
	return len(this.edges)
}

// Boundary returns the edges used by exactly one triangle. Edges shared by
// more than two triangles are non-manifold and are not boundary either.
func (this *EdgeCounts) Boundary() []Edge {
	var boundary []Edge
	for i, e := range this.edges {
		if this.counts[i] == 1 {
			boundary = append(boundary, e)
		}
	}

	return boundary
}
