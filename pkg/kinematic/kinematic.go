package kinematic

// This package includes 2D vector helpers and per-frame integration of
// bodies under constant acceleration.

import (
	"fmt"
	"math"
)

const (
	// Gravity is the downward acceleration in pixels per frame squared.
	// Screen coordinates grow downwards.
	Gravity float64 = 0.15
)

// Vector is a 2D position, velocity or acceleration in screen space.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Step advances a body by one frame: the velocity picks up acc, then the
// position moves by the new velocity.
func Step(pos, vel, acc Vector) (Vector, Vector) {
	vel = vel.Add(acc)
	return pos.Add(vel), vel
}
