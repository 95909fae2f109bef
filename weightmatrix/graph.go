package weightmatrix

import "github.com/leo848/pathviz/geometry"

// Graph wraps a square weight Matrix with graph-shaped accessors.
type Graph struct {
	mat *Matrix
}

// NewGraph wraps an existing Matrix as a Graph.
func NewGraph(mat *Matrix) *Graph { return &Graph{mat: mat} }

// FromPoints materializes an n×n distance matrix from points under metric.
// It never fails for well-formed, equal-dimension points.
func FromPoints(points []geometry.Point, metric geometry.Metric) (*Graph, error) {
	n := len(points)
	mat, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d, derr := geometry.Dist(points[i], points[j], metric)
			if derr != nil {
				return nil, derr
			}
			_ = mat.Set(i, j, d)
		}
	}
	return &Graph{mat: mat}, nil
}

// Size returns the number of vertices.
func (g *Graph) Size() int { return g.mat.Dim() }

// Weight returns the edge weight w(i,j).
func (g *Graph) Weight(i, j int) (float32, error) { return g.mat.At(i, j) }

// Matrix returns the underlying weight matrix.
func (g *Graph) Matrix() *Matrix { return g.mat }

// PathWeight sums w(p[i], p[i+1]) along the given index path (open path, no
// closing edge back to p[0]).
func (g *Graph) PathWeight(path IndexPath) (float32, error) {
	var sum float32
	for i := 0; i+1 < len(path); i++ {
		w, err := g.mat.At(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		sum += w
	}
	return sum, nil
}
