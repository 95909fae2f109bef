package tspconstruct

import (
	"time"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/milp"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunILP constructs a path by modeling it as a 0/1 integer program and
// solving with iterative subtour elimination: solve, inspect the resulting
// edge set, and if more than one path remains or any path is a cycle, add
// separation constraints and re-solve. Degrades gracefully to the identity
// path 0..n if ilpMaxDuration elapses before convergence.
//
// Grounded on original_source/src/path/create/ilp.rs, adapted from the
// coin_cbc bindings to the milp.Model seam.
func RunILP(ctx pathctx.CreateContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	n := ctx.Len()
	if n == 0 {
		path := weightmatrix.IndexPath{}
		_ = ctx.SendCreationDone(sink, path)
		return path
	}
	if n == 1 {
		path := weightmatrix.IndexPath{0}
		_ = ctx.SendCreationDone(sink, path)
		return path
	}

	deadline := time.Now().Add(ctx.Options().ILPMaxDuration())
	weights := ctx.AdjacencyMatrix().Normalize().Scale(100)

	model := milp.New(ctx.Options().MILPSolver())
	model.SetObjSense(milp.Minimize)

	x := make([][]milp.Col, n)
	for i := range x {
		x[i] = make([]milp.Col, n)
		for j := range x[i] {
			x[i][j] = model.AddBinary()
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ := weights.At(i, j)
			model.SetObjCoeff(x[i][j], float64(w))
		}
	}

	// Each row (outgoing) has at most one accepted edge.
	for i := 0; i < n; i++ {
		row := model.AddRow()
		model.SetRowUpper(row, 1)
		for j := 0; j < n; j++ {
			model.SetWeight(row, x[i][j], 1)
		}
	}
	// Each column (incoming) has at most one accepted edge.
	for j := 0; j < n; j++ {
		row := model.AddRow()
		model.SetRowUpper(row, 1)
		for i := 0; i < n; i++ {
			model.SetWeight(row, x[i][j], 1)
		}
	}
	// Every vertex is touched by at least one accepted edge, in either direction.
	for i := 0; i < n; i++ {
		row := model.AddRow()
		model.SetRowLower(row, 1)
		model.SetWeight(row, x[i][i], 1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			model.SetWeight(row, x[i][j], 1)
			model.SetWeight(row, x[j][i], 1)
		}
	}
	// No self-loops, no simultaneous forward/backward edge between a pair.
	for i := 0; i < n; i++ {
		row := model.AddRow()
		model.SetRowEqual(row, 0)
		model.SetWeight(row, x[i][i], 1)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			row := model.AddRow()
			model.SetRowUpper(row, 1)
			model.SetWeight(row, x[i][j], 1)
			model.SetWeight(row, x[j][i], 1)
		}
	}
	// Exactly n-1 edges are accepted: a path, not a cycle.
	totalRow := model.AddRow()
	model.SetRowEqual(totalRow, float64(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			model.SetWeight(totalRow, x[i][j], 1)
		}
	}

	for {
		if time.Now().After(deadline) {
			identity := make(weightmatrix.IndexPath, n)
			for i := range identity {
				identity[i] = i
			}
			_ = ctx.SendCreationDone(sink, identity)
			return identity
		}

		sol := model.Solve()
		succ := readSucc(sol, x, n)
		paths, cycles := pathsAndCycles(n, succ)

		allSegments := append(append([]weightmatrix.IndexPath{}, paths...), cycles...)
		edges := make([]weightmatrix.Edge, 0)
		for _, seg := range allSegments {
			edges = append(edges, seg.IntoEdges()...)
		}
		_ = ctx.SendEdges(sink, edges, nil)

		if len(cycles) == 0 && len(paths) == 1 && len(paths[0]) == n {
			_ = ctx.SendCreationDone(sink, paths[0])
			return paths[0]
		}

		for _, cycle := range cycles {
			addCycleSeparation(model, x, cycle, n)
		}
		// Also separate any incomplete open path fragment; without this the
		// branch-and-bound backend can return the same fragmentation again.
		for _, p := range paths {
			if len(p) < n {
				addCycleSeparation(model, x, append(p, p[0]), n)
			}
		}
	}
}

func readSucc(sol milp.Solution, x [][]milp.Col, n int) map[int]int {
	succ := make(map[int]int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if sol.Value(x[i][j]) == 1 {
				succ[i] = j
			}
		}
	}
	return succ
}

// pathsAndCycles partitions the accepted-edge successor map into open path
// fragments (vertices with no predecessor, followed forward) and cycles
// (remaining vertices, which must all lie on a closed loop).
func pathsAndCycles(n int, succ map[int]int) (paths, cycles []weightmatrix.IndexPath) {
	pred := make(map[int]int, len(succ))
	for from, to := range succ {
		pred[to] = from
	}

	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		if _, hasPred := pred[v]; hasPred {
			continue
		}
		path := weightmatrix.IndexPath{v}
		visited[v] = true
		cur := v
		for {
			next, ok := succ[cur]
			if !ok {
				break
			}
			path = append(path, next)
			visited[next] = true
			cur = next
		}
		paths = append(paths, path)
	}

	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		cycle := weightmatrix.IndexPath{v}
		visited[v] = true
		cur := v
		for {
			next := succ[cur]
			cycle = append(cycle, next)
			if next == v {
				break
			}
			visited[next] = true
			cur = next
		}
		cycles = append(cycles, cycle)
	}

	return paths, cycles
}

// addCycleSeparation takes seg as a closed loop (its last entry repeats its
// first) and adds: (1) an upper-bound row allowing at most len(seg)-2 of the
// edges between consecutive entries of seg, in either direction, so the loop
// cannot be chosen whole; (2) when len(seg) > 4, a lower-bound row requiring
// at least one edge crossing between seg's vertices and their complement.
func addCycleSeparation(model milp.Model, x [][]milp.Col, seg weightmatrix.IndexPath, n int) {
	length := seg.Len()
	inSeg := make(map[int]bool, length)
	for _, v := range seg {
		inSeg[v] = true
	}

	row := model.AddRow()
	model.SetRowUpper(row, float64(length-2))
	for i := 0; i+1 < len(seg); i++ {
		u, v := seg[i], seg[i+1]
		model.SetWeight(row, x[u][v], 1)
		model.SetWeight(row, x[v][u], 1)
	}

	if length > 4 {
		crossRow := model.AddRow()
		model.SetRowLower(crossRow, 1)
		for u := 0; u < n; u++ {
			if !inSeg[u] {
				continue
			}
			for v := 0; v < n; v++ {
				if inSeg[v] {
					continue
				}
				model.SetWeight(crossRow, x[u][v], 1)
				model.SetWeight(crossRow, x[v][u], 1)
			}
		}
	}
}
