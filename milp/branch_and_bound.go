package milp

import "math"

// rowBound records the sense and bound value for a single constraint row.
type rowBound struct {
	sense rowSense
	bound float64
}

type rowSense int

const (
	senseUnset rowSense = iota
	senseUpper
	senseLower
	senseEqual
)

// branchAndBound is the default Model backend: a depth-first branch-and-bound
// search over binary variables, grounded on the same DFS-with-pruning shape
// as github.com/katalvlaran/lvlath/tsp's TSPBranchAndBound (bb.go), adapted
// from tour search to generic 0/1 linear feasibility + objective.
//
// Bound: at each node, the remaining unassigned variables are optimistically
// set to whichever of {0,1} improves the objective, ignoring constraints
// (a relaxation, hence admissible). This keeps the backend simple and
// correct for the small, dense instances this visualizer solves; it is not a
// substitute for a real LP-relaxation bound in a production MILP engine.
type branchAndBound struct {
	sense   Sense
	objCoef []float64     // objective coefficient per column
	rows    []rowBound    // per-row sense/bound
	weights []map[int]float64 // per-row: col -> coefficient
}

// NewBranchAndBound constructs an empty branch-and-bound Model.
func NewBranchAndBound() Model {
	return &branchAndBound{sense: Minimize}
}

func (b *branchAndBound) SetObjSense(s Sense) { b.sense = s }

func (b *branchAndBound) AddBinary() Col {
	b.objCoef = append(b.objCoef, 0)
	return Col(len(b.objCoef) - 1)
}

func (b *branchAndBound) AddRow() Row {
	b.rows = append(b.rows, rowBound{})
	b.weights = append(b.weights, map[int]float64{})
	return Row(len(b.rows) - 1)
}

func (b *branchAndBound) SetRowUpper(row Row, bound float64) {
	b.rows[row] = rowBound{sense: senseUpper, bound: bound}
}

func (b *branchAndBound) SetRowLower(row Row, bound float64) {
	b.rows[row] = rowBound{sense: senseLower, bound: bound}
}

func (b *branchAndBound) SetRowEqual(row Row, bound float64) {
	b.rows[row] = rowBound{sense: senseEqual, bound: bound}
}

func (b *branchAndBound) SetWeight(row Row, col Col, weight float64) {
	b.weights[row][int(col)] = weight
}

func (b *branchAndBound) SetObjCoeff(col Col, coeff float64) {
	b.objCoef[col] = coeff
}

// bbSolution is the read-back result of a Solve call.
type bbSolution struct {
	values   []float64
	feasible bool
}

func (s *bbSolution) Value(col Col) float64 {
	if int(col) >= len(s.values) {
		return 0
	}
	return s.values[col]
}

func (s *bbSolution) Feasible() bool { return s.feasible }

// Solve runs DFS branch-and-bound over assignment of each column to 0 or 1,
// pruning a branch once any row can no longer possibly satisfy its bound
// even under the most favorable assignment of the remaining free columns.
func (b *branchAndBound) Solve() Solution {
	n := len(b.objCoef)
	assign := make([]int8, n) // -1 unassigned, 0 or 1 assigned
	for i := range assign {
		assign[i] = -1
	}

	best := &bbSolution{}
	bestObj := math.Inf(1)
	if b.sense == Maximize {
		bestObj = math.Inf(-1)
	}

	var search func(idx int)
	search = func(idx int) {
		if idx == n {
			if !b.rowsSatisfied(assign) {
				return
			}
			obj := b.objective(assign)
			if (b.sense == Minimize && obj < bestObj) || (b.sense == Maximize && obj > bestObj) {
				bestObj = obj
				best.feasible = true
				best.values = make([]float64, n)
				for i, a := range assign {
					best.values[i] = float64(a)
				}
			}
			return
		}
		if !b.feasiblePrefix(assign, idx) {
			return
		}
		if best.feasible {
			bound := 0.0
			for i, c := range b.objCoef {
				switch {
				case i < idx:
					bound += c * float64(assign[i])
				case (b.sense == Minimize && c < 0) || (b.sense == Maximize && c > 0):
					bound += c
				}
			}
			if (b.sense == Minimize && bound >= bestObj) || (b.sense == Maximize && bound <= bestObj) {
				return
			}
		}
		// Deterministic branch order: try 0 then 1 for minimization (cheaper
		// first), 1 then 0 for maximization.
		order := [2]int8{0, 1}
		if b.sense == Maximize {
			order = [2]int8{1, 0}
		}
		for _, v := range order {
			assign[idx] = v
			search(idx + 1)
		}
		assign[idx] = -1
	}

	search(0)
	if !best.feasible {
		best.values = make([]float64, n)
	}
	return best
}

// feasiblePrefix reports whether, given the columns assigned so far
// (0..upto-1), every row can still possibly be satisfied once the remaining
// columns are assigned optimally.
func (b *branchAndBound) feasiblePrefix(assign []int8, upto int) bool {
	for r, row := range b.rows {
		if row.sense == senseUnset {
			continue
		}
		var fixedSum, freePos, freeNeg float64
		for col, w := range b.weights[r] {
			if col < upto {
				fixedSum += w * float64(assign[col])
				continue
			}
			if w > 0 {
				freePos += w
			} else {
				freeNeg += w
			}
		}
		switch row.sense {
		case senseUpper:
			if fixedSum+freeNeg > row.bound+1e-9 {
				return false
			}
		case senseLower:
			if fixedSum+freePos < row.bound-1e-9 {
				return false
			}
		case senseEqual:
			if fixedSum+freePos < row.bound-1e-9 || fixedSum+freeNeg > row.bound+1e-9 {
				return false
			}
		}
	}
	return true
}

func (b *branchAndBound) rowsSatisfied(assign []int8) bool {
	for r, row := range b.rows {
		if row.sense == senseUnset {
			continue
		}
		var sum float64
		for col, w := range b.weights[r] {
			sum += w * float64(assign[col])
		}
		switch row.sense {
		case senseUpper:
			if sum > row.bound+1e-9 {
				return false
			}
		case senseLower:
			if sum < row.bound-1e-9 {
				return false
			}
		case senseEqual:
			if sum < row.bound-1e-9 || sum > row.bound+1e-9 {
				return false
			}
		}
	}
	return true
}

func (b *branchAndBound) objective(assign []int8) float64 {
	var sum float64
	for i, c := range b.objCoef {
		sum += c * float64(assign[i])
	}
	return sum
}
