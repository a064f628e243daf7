// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatEuler returns a new quaternion from given Euler angles in radians.
func NewQuatEuler(euler Vector3) Quat {
	q := Quat{}
	q.SetFromEuler(euler)
	return q
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// SetFromEuler sets this quaternion from the specified vector with
// Euler angles for each axis. It is assumed that the Euler angles
// are in XYZ order.
func (q *Quat) SetFromEuler(euler Vector3) {
	c1 := Cos(euler.X / 2)
	c2 := Cos(euler.Y / 2)
	c3 := Cos(euler.Z / 2)
	s1 := Sin(euler.X / 2)
	s2 := Sin(euler.Y / 2)
	s3 := Sin(euler.Z / 2)

	q.X = s1*c2*c3 - c1*s2*s3
	q.Y = c1*s2*c3 + s1*c2*s3
	q.Z = c1*c2*s3 - s1*s2*c3
	q.W = c1*c2*c3 + s1*s2*s3
}

// ToEuler returns a Vector3 with components as the Euler angles
// in radians from the given quaternion, inverting [Quat.SetFromEuler].
func (q Quat) ToEuler() Vector3 {
	sinp := Clamp(2*(q.W*q.Y-q.Z*q.X), -1, 1)
	return Vector3{
		X: Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y)),
		Y: Asin(sinp),
		Z: Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z)),
	}
}

// EulerDegrees returns the Euler angles of this quaternion in degrees,
// each wrapped into [-180, 180].
func (q Quat) EulerDegrees() Vector3 {
	e := q.ToEuler()
	return Vec3(WrapAngle(RadToDeg(e.X)), WrapAngle(RadToDeg(e.Y)), WrapAngle(RadToDeg(e.Z)))
}

// SetEulerDegrees sets this quaternion from Euler angles in degrees.
func (q *Quat) SetEulerDegrees(euler Vector3) {
	q.SetFromEuler(Vec3(DegToRad(euler.X), DegToRad(euler.Y), DegToRad(euler.Z)))
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		*q = QuatIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
