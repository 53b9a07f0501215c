package uniforms

import (
	"github.com/bloeys/gglm/gglm"
)

// Buffer is the GPU side of a store. *buffers.UniformBuffer implements it
type Buffer interface {
	SetBindPoint(bindPointIndex uint32)
	SetStruct(inputStruct any)
}

// FrameStore owns the frame level uniforms. Data is valid from the frame's Update
// until the next frame's Update.
type FrameStore struct {
	Data FrameUniforms
	buf  Buffer
}

// Bind attaches the store's buffer to FrameBindingPoint
func (fs *FrameStore) Bind() {
	fs.buf.SetBindPoint(FrameBindingPoint)
}

// Update stores the frame data, computes ViewProjection=projection*view and uploads it
func (fs *FrameStore) Update(projection, view *gglm.Mat4, cameraPos *gglm.Vec3, elapsedTime, deltaTime float32, flags RenderFlags) {

	fs.Data.Projection = *projection
	fs.Data.View = *view
	fs.Data.ViewProjection = *projection.Clone().Mul(view)
	fs.Data.CameraPos = gglm.NewVec4(cameraPos.X(), cameraPos.Y(), cameraPos.Z(), 1)
	fs.Data.Time = elapsedTime
	fs.Data.DeltaTime = deltaTime
	fs.Data.RenderFlags = flags

	fs.buf.SetStruct(&fs.Data)
}

func NewFrameStore(buf Buffer) *FrameStore {
	return &FrameStore{buf: buf}
}

// InstanceStore owns the per draw uniforms. It must be updated after a renderable is selected
// and before its draw call.
type InstanceStore struct {
	Data InstanceUniforms
	buf  Buffer
}

// Bind attaches the store's buffer to InstanceBindingPoint
func (is *InstanceStore) Bind() {
	is.buf.SetBindPoint(InstanceBindingPoint)
}

// Update stores the model matrix, computes ModelViewProjection=viewProjection*model
// and the normal matrix, then uploads it
func (is *InstanceStore) Update(model, viewProjection *gglm.Mat4) {

	is.Data.Model = *model
	is.Data.ModelViewProjection = *viewProjection.Clone().Mul(model)
	is.Data.NormalMatrix = NormalMat(model)

	is.buf.SetStruct(&is.Data)
}

func NewInstanceStore(buf Buffer) *InstanceStore {
	return &InstanceStore{buf: buf}
}
