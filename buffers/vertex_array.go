package buffers

import (
	"github.com/bloeys/nrender/assert"
	"github.com/bloeys/nrender/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray owns its vertex and index buffers and deletes them with itself
type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer

	// nextAttrib is the shader location the next added vertex buffer starts at
	nextAttrib uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddVertexBuffer enables one attribute per layout element, continuing the
// locations of previously added buffers. The vertex array is left bound
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer) {

	va.Bind()
	vbo.Bind()

	for _, e := range vbo.Elements {

		assert.T(!e.IsMatrix(), "Matrix vertex attributes are not supported. Got element of type %s", e.ElementType)

		gl.EnableVertexAttribArray(va.nextAttrib)
		gl.VertexAttribPointerWithOffset(va.nextAttrib, e.CompCount(), e.GLType(), false, vbo.Stride, uintptr(e.Offset))
		va.nextAttrib++
	}

	va.Vbos = append(va.Vbos, vbo)
}

// SetIndexBuffer records ib in the vertex array state. The vertex array is left bound
func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

func (va *VertexArray) Delete() {

	for i := range va.Vbos {
		va.Vbos[i].Delete()
	}
	va.Vbos = nil
	va.IndexBuffer.Delete()

	if va.Id != 0 {
		gl.DeleteVertexArrays(1, &va.Id)
		va.Id = 0
	}

	va.nextAttrib = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL vertex array object")
	}

	return vao
}
