// Package geometry provides fixed-dimension points and the three distance
// norms (Manhattan, Euclidean, Max) used to build weight matrices from point
// clouds. A Metric pairs a Norm with an invert flag: invert negates the
// result, turning a minimizing search into a maximizing one without
// duplicating any algorithm code.
package geometry
