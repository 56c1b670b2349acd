// Package vecmath provides the single-precision vector and matrix
// primitives the rest of qgeom is built on: 3-component vectors,
// row-major 3x3 rotations and 3x4 affine transforms.
//
// Every function takes its inputs by value. Output pointers may therefore
// alias an input; the result is always computed from the input values as
// they were at call time.
package vecmath
