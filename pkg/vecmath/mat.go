package vecmath

// Mat3 is a row-major 3x3 rotation matrix, indexed m[row][col].
type Mat3 [3][3]float32

// Mat3x4 is a row-major 3x4 affine transform. Column 3 of each row holds
// the translation.
type Mat3x4 [3][4]float32

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity3x4 returns the identity transform.
func Identity3x4() Mat3x4 {
	return Mat3x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// ConcatRotations returns a·b.
func ConcatRotations(a, b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		out[i][0] = a[i][0]*b[0][0] + a[i][1]*b[1][0] + a[i][2]*b[2][0]
		out[i][1] = a[i][0]*b[0][1] + a[i][1]*b[1][1] + a[i][2]*b[2][1]
		out[i][2] = a[i][0]*b[0][2] + a[i][1]*b[1][2] + a[i][2]*b[2][2]
	}
	return out
}

// ConcatTransforms composes two affine transforms. The result applies b
// first and then a; swapping the operands changes the meaning.
func ConcatTransforms(a, b Mat3x4) Mat3x4 {
	var out Mat3x4
	for i := 0; i < 3; i++ {
		out[i][0] = a[i][0]*b[0][0] + a[i][1]*b[1][0] + a[i][2]*b[2][0]
		out[i][1] = a[i][0]*b[0][1] + a[i][1]*b[1][1] + a[i][2]*b[2][1]
		out[i][2] = a[i][0]*b[0][2] + a[i][1]*b[1][2] + a[i][2]*b[2][2]
		out[i][3] = a[i][0]*b[0][3] + a[i][1]*b[1][3] + a[i][2]*b[2][3] + a[i][3]
	}
	return out
}

// Transpose returns mᵀ. For a pure rotation this is its inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Rotation returns the 3x3 rotation block of m.
func (m Mat3x4) Rotation() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Translation returns the translation column of m.
func (m Mat3x4) Translation() Vec3 {
	return Vec3{m[0][3], m[1][3], m[2][3]}
}

// TransformPoint rotates p by m and then translates it.
func (m Mat3x4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m[0][0]*p[0] + m[0][1]*p[1] + m[0][2]*p[2] + m[0][3],
		m[1][0]*p[0] + m[1][1]*p[1] + m[1][2]*p[2] + m[1][3],
		m[2][0]*p[0] + m[2][1]*p[1] + m[2][2]*p[2] + m[2][3],
	}
}
