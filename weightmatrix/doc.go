// Package weightmatrix provides the square weight matrix, the Graph that
// wraps it, and the index-path type that TSP algorithms operate on.
//
// Grounded on github.com/katalvlaran/lvlath/matrix's Dense type (flat
// row-major float storage with bounds-checked At/Set) and generalized to the
// square-matrix, path-cost operations this server's algorithms need:
// RotateLeft, Max, Scale, Normalize, and a 0/1 "logical matrix" pretty-printer.
package weightmatrix
