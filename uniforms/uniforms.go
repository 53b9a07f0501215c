// Package uniforms holds the frame and instance uniform blocks shared by the forward shaders.
//
// Both blocks use layout=std140 and are bound to fixed binding points, so every shader that
// declares them reads the same data without per-material uploads:
//
//	layout(std140) uniform FrameUniforms    { ... }; // binding point 0
//	layout(std140) uniform InstanceUniforms { ... }; // binding point 1
package uniforms

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/buffers"
)

const (
	FrameBindingPoint    uint32 = 0
	InstanceBindingPoint uint32 = 1

	FrameBlockName    = "FrameUniforms"
	InstanceBlockName = "InstanceUniforms"
)

// FrameUniforms is refreshed once per frame, before any renderable is drawn
type FrameUniforms struct {
	Projection     gglm.Mat4
	View           gglm.Mat4
	ViewProjection gglm.Mat4
	CameraPos      gglm.Vec4
	Time           float32
	DeltaTime      float32
	RenderFlags    RenderFlags
}

// InstanceUniforms is refreshed for every drawn renderable
type InstanceUniforms struct {
	Model               gglm.Mat4
	ModelViewProjection gglm.Mat4
	NormalMatrix        gglm.Mat3
}

// Field ids of the uniform buffer layouts. They follow struct field order
const (
	frameFieldProjection uint16 = iota
	frameFieldView
	frameFieldViewProjection
	frameFieldCameraPos
	frameFieldTime
	frameFieldDeltaTime
	frameFieldRenderFlags
)

const (
	instanceFieldModel uint16 = iota
	instanceFieldModelViewProjection
	instanceFieldNormalMatrix
)

func FrameFields() []buffers.UniformBufferFieldInput {
	return []buffers.UniformBufferFieldInput{
		{Id: frameFieldProjection, Type: buffers.DataTypeMat4},
		{Id: frameFieldView, Type: buffers.DataTypeMat4},
		{Id: frameFieldViewProjection, Type: buffers.DataTypeMat4},
		{Id: frameFieldCameraPos, Type: buffers.DataTypeVec4},
		{Id: frameFieldTime, Type: buffers.DataTypeFloat32},
		{Id: frameFieldDeltaTime, Type: buffers.DataTypeFloat32},
		{Id: frameFieldRenderFlags, Type: buffers.DataTypeUint32},
	}
}

func InstanceFields() []buffers.UniformBufferFieldInput {
	return []buffers.UniformBufferFieldInput{
		{Id: instanceFieldModel, Type: buffers.DataTypeMat4},
		{Id: instanceFieldModelViewProjection, Type: buffers.DataTypeMat4},
		{Id: instanceFieldNormalMatrix, Type: buffers.DataTypeMat3},
	}
}

// NewFrameUniformBuffer creates the GL buffer backing a FrameStore. Requires a GL context
func NewFrameUniformBuffer() *buffers.UniformBuffer {
	return buffers.NewUniformBuffer(FrameFields(), buffers.BufUsage_Dynamic_Draw)
}

// NewInstanceUniformBuffer creates the GL buffer backing an InstanceStore. Requires a GL context
func NewInstanceUniformBuffer() *buffers.UniformBuffer {
	return buffers.NewUniformBuffer(InstanceFields(), buffers.BufUsage_Dynamic_Draw)
}

// NormalMat returns transpose(inverse(upperLeft3x3(model))).
//
// The columns of the inverse transpose are the cross products of the model's basis columns divided by
// the determinant. A singular basis (e.g. a zero scale) returns the zero matrix.
func NormalMat(model *gglm.Mat4) gglm.Mat3 {

	c0 := [3]float32{model.Data[0][0], model.Data[0][1], model.Data[0][2]}
	c1 := [3]float32{model.Data[1][0], model.Data[1][1], model.Data[1][2]}
	c2 := [3]float32{model.Data[2][0], model.Data[2][1], model.Data[2][2]}

	n0 := cross(c1, c2)
	n1 := cross(c2, c0)
	n2 := cross(c0, c1)

	det := c0[0]*n0[0] + c0[1]*n0[1] + c0[2]*n0[2]
	if det == 0 {
		return gglm.Mat3{}
	}

	invDet := 1 / det
	return gglm.Mat3{
		Data: [3][3]float32{
			{n0[0] * invDet, n0[1] * invDet, n0[2] * invDet},
			{n1[0] * invDet, n1[1] * invDet, n1[2] * invDet},
			{n2[0] * invDet, n2[1] * invDet, n2[2] * invDet},
		},
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
