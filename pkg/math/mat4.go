package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Element (row r, column c) lives at index c*4+r; the translation is m[12..14].
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Scale returns a scale matrix.
func Scale(v Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// RotateX returns a rotation of angle radians around the X axis.
func RotateX(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY returns a rotation of angle radians around the Y axis.
func RotateY(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZ returns a rotation of angle radians around the Z axis.
func RotateZ(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Compose builds T * Ry * Rx * Rz * S from a position, Euler angles (radians,
// applied Y then X then Z) and a scale.
func Compose(pos, euler, scale Vec3) Mat4 {
	r := RotateY(euler.Y).Mul(RotateX(euler.X)).Mul(RotateZ(euler.Z))
	return Translate(pos).Mul(r).Mul(Scale(scale))
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[c*4+k]
			}
			r[c*4+row] = sum
		}
	}
	return r
}

// TransformVec3 transforms a point (w=1), applying the perspective divide if needed.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// TransformDir transforms a direction, ignoring translation.
func (m Mat4) TransformDir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// Inverse returns the inverse of m, or the identity if m is singular.
func (m Mat4) Inverse() Mat4 {
	b00 := m[0]*m[5] - m[1]*m[4]
	b01 := m[0]*m[6] - m[2]*m[4]
	b02 := m[0]*m[7] - m[3]*m[4]
	b03 := m[1]*m[6] - m[2]*m[5]
	b04 := m[1]*m[7] - m[3]*m[5]
	b05 := m[2]*m[7] - m[3]*m[6]
	b06 := m[8]*m[13] - m[9]*m[12]
	b07 := m[8]*m[14] - m[10]*m[12]
	b08 := m[8]*m[15] - m[11]*m[12]
	b09 := m[9]*m[14] - m[10]*m[13]
	b10 := m[9]*m[15] - m[11]*m[13]
	b11 := m[10]*m[15] - m[11]*m[14]

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return Identity()
	}
	inv := 1 / det

	return Mat4{
		(m[5]*b11 - m[6]*b10 + m[7]*b09) * inv,
		(m[2]*b10 - m[1]*b11 - m[3]*b09) * inv,
		(m[13]*b05 - m[14]*b04 + m[15]*b03) * inv,
		(m[10]*b04 - m[9]*b05 - m[11]*b03) * inv,
		(m[6]*b08 - m[4]*b11 - m[7]*b07) * inv,
		(m[0]*b11 - m[2]*b08 + m[3]*b07) * inv,
		(m[14]*b02 - m[12]*b05 - m[15]*b01) * inv,
		(m[8]*b05 - m[10]*b02 + m[11]*b01) * inv,
		(m[4]*b10 - m[5]*b08 + m[7]*b06) * inv,
		(m[1]*b08 - m[0]*b10 - m[3]*b06) * inv,
		(m[12]*b04 - m[13]*b02 + m[15]*b00) * inv,
		(m[9]*b02 - m[8]*b04 - m[11]*b00) * inv,
		(m[5]*b07 - m[4]*b09 - m[6]*b06) * inv,
		(m[0]*b09 - m[1]*b07 + m[2]*b06) * inv,
		(m[13]*b01 - m[12]*b03 - m[14]*b00) * inv,
		(m[8]*b03 - m[9]*b01 + m[10]*b00) * inv,
	}
}

// NormalMatrix returns the inverse-transpose of m, for transforming normals.
func (m Mat4) NormalMatrix() Mat4 {
	n := m.Inverse().Transpose()
	n[3], n[7], n[11] = 0, 0, 0
	n[12], n[13], n[14] = 0, 0, 0
	n[15] = 1
	return n
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// LookAtEuler returns the Y-X-Z Euler angles that orient a -Z-forward object
// at from so that it faces to. Roll is always zero.
func LookAtEuler(from, to Vec3) Vec3 {
	d := to.Sub(from).Normalize()
	if d == (Vec3{}) {
		return Vec3{}
	}
	pitch := math.Asin(float64(clamp(d.Y, -1, 1)))
	yaw := math.Atan2(float64(-d.X), float64(-d.Z))
	return Vec3{X: float32(pitch), Y: float32(yaw)}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
