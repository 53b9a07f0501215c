package scene

import (
	"math"

	"github.com/bloeys/gglm/gglm"
)

type GameObject struct {
	Name string

	Position gglm.Vec3
	// Rotation is in euler degrees, applied in x, y, z order
	Rotation gglm.Vec3
	Scale    gglm.Vec3

	Components []Component

	scene *Scene
}

// AddComponent attaches c to the object. If the object is already in a scene, the scene
// picks up the component (e.g. new renderables are appended to the draw order)
func (g *GameObject) AddComponent(c Component) {

	c.attach(g)
	g.Components = append(g.Components, c)

	if g.scene != nil {
		g.scene.componentAdded(c)
	}
}

func (g *GameObject) SetRotation(eulerDeg gglm.Vec3) {
	g.Rotation = eulerDeg
}

// Transform returns the model matrix Translation*Rotation*Scale, where Rotation=Rz*Ry*Rx
func (g *GameObject) Transform() gglm.Mat4 {

	sx, cx := sinCos(g.Rotation.X() * gglm.Deg2Rad)
	sy, cy := sinCos(g.Rotation.Y() * gglm.Deg2Rad)
	sz, cz := sinCos(g.Rotation.Z() * gglm.Deg2Rad)

	// Columns of Rz*Ry*Rx
	rot := [3][3]float32{
		{cy * cz, cy * sz, -sy},
		{sx*sy*cz - cx*sz, sx*sy*sz + cx*cz, sx * cy},
		{cx*sy*cz + sx*sz, cx*sy*sz - sx*cz, cx * cy},
	}

	scale := [3]float32{g.Scale.X(), g.Scale.Y(), g.Scale.Z()}

	var m gglm.Mat4
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m.Data[col][row] = rot[col][row] * scale[col]
		}
	}

	m.Data[3][0] = g.Position.X()
	m.Data[3][1] = g.Position.Y()
	m.Data[3][2] = g.Position.Z()
	m.Data[3][3] = 1

	return m
}

func sinCos(rad float32) (sin, cos float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:  name,
		Scale: gglm.NewVec3(1, 1, 1),
	}
}
