// Package spatial classifies axis-aligned boxes against planes and
// accumulates bounding boxes. It is the surface a BSP or bounding-volume
// walker calls once per node, so planes carry their sign bits and type
// precomputed and the box tests never branch on normal signs at call time.
package spatial
