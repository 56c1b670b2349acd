package spatial

import "github.com/dgravesa/go-parallel/parallel"

// ParallelThreshold is the batch size at which ClassifyBoxes and CullBoxes
// spread work across goroutines. Smaller batches run on the caller's
// goroutine.
const ParallelThreshold = 4096

// ClassifyBoxes runs BoxOnPlaneSide for every box and stores the result at
// the same index of sides. Only the first min(len(boxes), len(sides))
// entries are processed. Each index is written by exactly one worker.
func ClassifyBoxes(boxes []Bounds, p *Plane, sides []Side) {
	n := min(len(boxes), len(sides))
	if n < ParallelThreshold {
		for i := 0; i < n; i++ {
			sides[i] = BoxOnPlaneSide(boxes[i], p)
		}
		return
	}
	parallel.For(n, func(i, _ int) {
		sides[i] = BoxOnPlaneSide(boxes[i], p)
	})
}

// CullBoxes returns, in ascending order, the indices of the boxes that are
// not entirely behind any of the planes. With the planes of a view frustum
// facing inward this is the potentially visible set.
func CullBoxes(boxes []Bounds, planes []Plane) []int {
	visible := make([]bool, len(boxes))
	test := func(i int) {
		for j := range planes {
			if BoxOnPlaneSide(boxes[i], &planes[j]) == SideBack {
				return
			}
		}
		visible[i] = true
	}

	if len(boxes) < ParallelThreshold {
		for i := range boxes {
			test(i)
		}
	} else {
		parallel.For(len(boxes), func(i, _ int) {
			test(i)
		})
	}

	var out []int
	for i, v := range visible {
		if v {
			out = append(out, i)
		}
	}
	return out
}
