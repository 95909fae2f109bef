// Package pathviz is a websocket server for visualizing sorting and
// traveling-salesman algorithms step by step.
//
// A client connects, sends a request (sort a list of numbers, construct or
// improve a path through a set of points or weight matrix), and receives a
// stream of rate-limited step records describing the algorithm's progress,
// ending in a final record carrying the result.
//
// Package layout:
//
//	geometry/      — points and distance metrics
//	weightmatrix/  — dense weight matrices and index paths
//	numeric/       — float ordering and cost stabilization
//	milp/          — a small branch-and-bound 0/1 linear solver
//	pathctx/       — the Context abstraction algorithms run against
//	sortengine/    — instrumented sorting algorithms
//	tspconstruct/  — path construction algorithms
//	tspimprove/    — path improvement algorithms
//	internal/wire/       — the JSON wire protocol
//	internal/stepsink/   — rate-limited step emission
//	internal/dispatcher/ — routes requests to the right engine
//	internal/transport/  — the websocket server
//	internal/logging/    — process logging
//	internal/detrand/    — deterministic, seedable randomness
//	cmd/server/          — the server entrypoint
package pathviz
