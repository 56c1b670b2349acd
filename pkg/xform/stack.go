package xform

import "github.com/chazu/qgeom/pkg/vecmath"

// Stack accumulates affine transforms while walking a transform hierarchy
// (bone chains, attachments). Each pushed transform is local to the frame
// below it. A Stack is owned by a single walker and is not safe for
// concurrent use.
type Stack struct {
	frames []vecmath.Mat3x4
}

// NewStack returns an empty stack whose current transform is the identity.
func NewStack() *Stack {
	return &Stack{}
}

// Push composes local onto the current transform.
func (s *Stack) Push(local vecmath.Mat3x4) {
	s.frames = append(s.frames, vecmath.ConcatTransforms(s.Current(), local))
}

// PushAngles pushes the transform of a child placed at origin facing angles.
func (s *Stack) PushAngles(angles, origin vecmath.Vec3) {
	s.Push(FromAngles(angles, origin))
}

// Pop discards the most recent frame. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Depth returns the number of pushed frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Current returns the accumulated world transform.
func (s *Stack) Current() vecmath.Mat3x4 {
	if len(s.frames) == 0 {
		return vecmath.Identity3x4()
	}
	return s.frames[len(s.frames)-1]
}

// TransformPoint maps a point from the current local frame to world space.
func (s *Stack) TransformPoint(p vecmath.Vec3) vecmath.Vec3 {
	return s.Current().TransformPoint(p)
}
