package types

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 represents a position or direction in 3D Cartesian space.
//
// Coordinates use float64 precision, suitable for most geometric
// applications with appropriate epsilon tolerance for comparisons.
//
// Example:
//
//	p := types.Vec3{X: 1.5, Y: 2.3, Z: -0.5}
//	q := types.Vec3{X: 0, Y: 0, Z: 0}
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) gonum() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func fromGonum(v r3.Vec) Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return fromGonum(r3.Add(v.gonum(), w.gonum())) }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return fromGonum(r3.Sub(v.gonum(), w.gonum())) }

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 { return fromGonum(r3.Scale(f, v.gonum())) }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return r3.Dot(v.gonum(), w.gonum()) }

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 { return fromGonum(r3.Cross(v.gonum(), w.gonum())) }

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return r3.Norm(v.gonum()) }

// String renders v for debug logging.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
