// Package pathctx is the capability abstraction every TSP construction and
// improvement algorithm programs against. It replaces the OO inheritance the
// original server used with two concrete context types — point-based and
// matrix-based — implementing one shared Context interface, mirroring how
// github.com/katalvlaran/lvlath/tsp's Graph abstracts over adjacency
// representations behind a single method set rather than a type hierarchy.
//
// A context owns its weightmatrix.Graph; algorithms only ever borrow it
// through the interface, never reach into a concrete struct.
package pathctx
