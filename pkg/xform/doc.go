// Package xform implements the rigid-transform layer: rotation of points
// about arbitrary axes, Euler angle to basis conversion, angle wrapping and
// interpolation, and a transform stack for hierarchical attachments.
//
// Angles are in degrees. Euler angles are stored as (pitch, yaw, roll) in a
// vecmath.Vec3, indexed by Pitch, Yaw and Roll.
package xform
