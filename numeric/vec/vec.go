// Package vec provides the fixed-size homogeneous vectors used across
// the transform and modulator packages. Spec 3.1's Vec[N, T] asks for
// an arbitrary compile-time length N; Go array lengths must be
// constants, not type parameters bound to a value, so N is limited to
// the two concrete lengths every caller in this spec actually needs.
package vec

// Vec2 is a 2-component vector, e.g. an alpha-beta or d-q pair.
type Vec2[T any] [2]T

// Vec3 is a 3-component vector, e.g. a three-phase a-b-c triple.
type Vec3[T any] [3]T

// To2 drops the third component -- used by Clarke forward, which
// ignores the C phase when present (spec 4.7).
func (v Vec3[T]) To2() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// New3 builds a Vec3 from three scalars.
func New3[T any](a, b, c T) Vec3[T] {
	return Vec3[T]{a, b, c}
}

// New2 builds a Vec2 from two scalars.
func New2[T any](a, b T) Vec2[T] {
	return Vec2[T]{a, b}
}
