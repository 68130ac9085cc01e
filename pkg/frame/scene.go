package frame

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is a fixed set of mesh instances. Instance i is translated by its
// offset and then rotated by i*Step degrees around Axis.
type Scene struct {
	Offsets []mgl32.Vec3
	Axis    mgl32.Vec3
	Step    float32
}

// NewScene builds a scene from plain coordinate triples
func NewScene(offsets [][3]float32, axis [3]float32, step float32) *Scene {
	s := &Scene{
		Offsets: make([]mgl32.Vec3, len(offsets)),
		Axis:    mgl32.Vec3(axis),
		Step:    step,
	}
	for i, o := range offsets {
		s.Offsets[i] = mgl32.Vec3(o)
	}
	return s
}

// Model returns the model matrix of instance i
func (s *Scene) Model(i int) mgl32.Mat4 {
	translate := mgl32.Translate3D(s.Offsets[i].X(), s.Offsets[i].Y(), s.Offsets[i].Z())
	rotate := mgl32.HomogRotate3D(mgl32.DegToRad(s.Step*float32(i)), s.Axis.Normalize())
	return translate.Mul4(rotate)
}

func (s *Scene) Len() int {
	return len(s.Offsets)
}
