// Package tspconstruct implements TSP path construction: transmute, random,
// nearest-neighbor (single and multi-start), brute force, greedy-edge,
// cheapest-insertion, Held-Karp bitmask dynamic programming, and ILP with
// iterative subtour elimination.
//
// Every algorithm programs against pathctx.CreateContext rather than a
// concrete point or matrix type, and returns an open Hamiltonian path
// (length n, no closing edge back to the start) — the weightmatrix package's
// path-cost convention throughout this server, deliberately diverging from
// github.com/katalvlaran/lvlath/tsp's closed-cycle convention (length n+1).
//
// Grounded on original_source/src/path/create/{algorithms,held_karp,ilp}.rs.
package tspconstruct
