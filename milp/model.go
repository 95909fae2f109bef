package milp

// Col identifies a binary decision variable (column) in a Model.
type Col int

// Row identifies a linear constraint (row) in a Model.
type Row int

// Sense selects how a Model's objective is optimized.
type Sense int

const (
	// Minimize finds the feasible assignment of minimal objective value.
	Minimize Sense = iota
	// Maximize finds the feasible assignment of maximal objective value.
	Maximize
)

// Model is the narrow surface a MILP backend must provide. It is built
// incrementally (AddBinary/AddRow calls interleaved with SetWeight/SetObjCoeff
// calls) and solved once with Solve.
type Model interface {
	// SetObjSense selects Minimize or Maximize for the objective. Default: Minimize.
	SetObjSense(Sense)

	// AddBinary introduces a new binary (0/1) decision variable and returns its column.
	AddBinary() Col

	// AddRow introduces a new linear constraint row with no bound set yet
	// (callers must call one of SetRowUpper/SetRowLower/SetRowEqual).
	AddRow() Row

	// SetRowUpper constrains row's linear combination to be ≤ bound.
	SetRowUpper(row Row, bound float64)

	// SetRowLower constrains row's linear combination to be ≥ bound.
	SetRowLower(row Row, bound float64)

	// SetRowEqual constrains row's linear combination to equal bound exactly.
	SetRowEqual(row Row, bound float64)

	// SetWeight sets the coefficient of col in row's linear combination.
	SetWeight(row Row, col Col, weight float64)

	// SetObjCoeff sets col's coefficient in the objective function.
	SetObjCoeff(col Col, coeff float64)

	// Solve runs the solver and returns the resulting Solution. Solve may be
	// called multiple times on the same Model after adding more rows
	// (iterative subtour elimination re-solves the tightened model).
	Solve() Solution
}

// Solution is the read-back surface for a solved Model.
type Solution interface {
	// Value returns the solved value of col (0 or 1 for binary variables).
	Value(col Col) float64

	// Feasible reports whether the solver found a feasible assignment.
	Feasible() bool
}

// SolverKind names a registered Model backend, selectable via
// OptionPool.MILPSolver. Only BranchAndBoundSolver is registered; unknown
// names fall back to it (the option pool ignores unrecognized configuration
// for forward compatibility).
type SolverKind string

// BranchAndBoundSolver is the only backend this server ships.
const BranchAndBoundSolver SolverKind = "branchAndBound"

// New constructs a fresh Model for the given solver kind. Unknown kinds
// fall back to BranchAndBoundSolver.
func New(kind SolverKind) Model {
	switch kind {
	case BranchAndBoundSolver:
		return NewBranchAndBound()
	default:
		return NewBranchAndBound()
	}
}
