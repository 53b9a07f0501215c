package camera

import (
	"math"

	"github.com/bloeys/gglm/gglm"
)

type Type int32

const (
	Type_Unknown Type = iota
	Type_Perspective
	Type_Orthographic
)

type Camera struct {
	Type Type

	Pos     gglm.Vec3
	Forward gglm.Vec3
	WorldUp gglm.Vec3

	NearClip float32
	FarClip  float32

	// Perspective data
	Fov         float32
	AspectRatio float32

	// Ortho data
	Left   float32
	Right  float32
	Top    float32
	Bottom float32

	ViewMat gglm.Mat4
	ProjMat gglm.Mat4
}

// Update recalculates the view and projection matrices. It should be called after changing any camera field
func (c *Camera) Update() {

	c.ViewMat = gglm.LookAtRH(&c.Pos, c.Pos.Clone().Add(&c.Forward), &c.WorldUp).Mat4

	if c.Type == Type_Perspective {
		projMat := gglm.Perspective(c.Fov, c.AspectRatio, c.NearClip, c.FarClip)
		c.ProjMat = *projMat.Clone()
	} else {
		c.ProjMat = gglm.Ortho(c.Left, c.Right, c.Top, c.Bottom, c.NearClip, c.FarClip).Mat4
	}
}

// UpdateRotation sets Forward from pitch and yaw (in radians) and calls Update
func (c *Camera) UpdateRotation(pitch, yaw float32) {

	dir := gglm.NewVec3(
		float32(math.Cos(float64(yaw))*math.Cos(float64(pitch))),
		float32(math.Sin(float64(pitch))),
		float32(math.Sin(float64(yaw))*math.Cos(float64(pitch))),
	)

	c.Forward = *dir.Normalize()
	c.Update()
}

// ResizeWindow updates the perspective aspect ratio (or ortho extents) for a new output size
func (c *Camera) ResizeWindow(width, height int32) {

	if width <= 0 || height <= 0 {
		return
	}

	if c.Type == Type_Perspective {
		c.AspectRatio = float32(width) / float32(height)
	} else {
		halfHeight := (c.Top - c.Bottom) / 2
		halfWidth := halfHeight * float32(width) / float32(height)
		centerX := (c.Left + c.Right) / 2
		c.Left = centerX - halfWidth
		c.Right = centerX + halfWidth
	}

	c.Update()
}

func (c *Camera) Projection() *gglm.Mat4 {
	return &c.ProjMat
}

func (c *Camera) View() *gglm.Mat4 {
	return &c.ViewMat
}

// ViewProjection returns ProjMat*ViewMat
func (c *Camera) ViewProjection() gglm.Mat4 {
	return *c.ProjMat.Clone().Mul(&c.ViewMat)
}

func NewPerspective(pos, forward, worldUp *gglm.Vec3, nearClip, farClip, fovRadians, aspectRatio float32) *Camera {

	cam := &Camera{
		Type:    Type_Perspective,
		Pos:     *pos,
		Forward: *forward,
		WorldUp: *worldUp,

		NearClip: nearClip,
		FarClip:  farClip,

		Fov:         fovRadians,
		AspectRatio: aspectRatio,
	}

	cam.Update()
	return cam
}

func NewOrthographic(pos, forward, worldUp *gglm.Vec3, nearClip, farClip, left, right, top, bottom float32) *Camera {

	cam := &Camera{
		Type:    Type_Orthographic,
		Pos:     *pos,
		Forward: *forward,
		WorldUp: *worldUp,

		NearClip: nearClip,
		FarClip:  farClip,

		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
	}

	cam.Update()
	return cam
}
