package weightmatrix

// Edge is an ordered pair of adjacent vertex indices along a path.
type Edge struct {
	From, To int
}

// IndexPath is an ordered sequence of vertex indices into a Graph.
type IndexPath []int

// Len returns the number of vertices in the path.
func (p IndexPath) Len() int { return len(p) }

// Clone returns an independent copy.
func (p IndexPath) Clone() IndexPath {
	out := make(IndexPath, len(p))
	copy(out, p)
	return out
}

// Reverse returns a new path with the order reversed.
func (p IndexPath) Reverse() IndexPath {
	out := make(IndexPath, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Concat returns the concatenation of p and other as a new path.
func (p IndexPath) Concat(other IndexPath) IndexPath {
	out := make(IndexPath, 0, len(p)+len(other))
	out = append(out, p...)
	out = append(out, other...)
	return out
}

// RotateLeft returns a new path rotated left by k positions (mod len(p)).
func (p IndexPath) RotateLeft(k int) IndexPath {
	n := len(p)
	if n == 0 {
		return p.Clone()
	}
	k = ((k % n) + n) % n
	out := make(IndexPath, n)
	copy(out, p[k:])
	copy(out[n-k:], p[:k])
	return out
}

// Swap returns a new path with the elements at i and j exchanged.
func (p IndexPath) Swap(i, j int) IndexPath {
	out := p.Clone()
	out[i], out[j] = out[j], out[i]
	return out
}

// Push appends v and returns the new path.
func (p IndexPath) Push(v int) IndexPath {
	out := make(IndexPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, v)
}

// Insert inserts v at position i and returns the new path.
func (p IndexPath) Insert(i, v int) IndexPath {
	out := make(IndexPath, 0, len(p)+1)
	out = append(out, p[:i]...)
	out = append(out, v)
	out = append(out, p[i:]...)
	return out
}

// IntoEdges produces the (i, i+1)-adjacent edge pairs of the path.
func (p IndexPath) IntoEdges() []Edge {
	if len(p) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		edges = append(edges, Edge{From: p[i], To: p[i+1]})
	}
	return edges
}
