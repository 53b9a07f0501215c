package buffers

import (
	"github.com/bloeys/nrender/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexLayout describes one interleaved vertex. Attribute i of the layout is
// bound to shader location i (offset by any buffers added to the same vertex array before it)
type VertexLayout struct {
	Elements []Element
	// Stride is the size of one vertex in bytes
	Stride int32
}

// NewVertexLayout packs the given types one after the other with no padding
func NewVertexLayout(types ...ElementType) VertexLayout {

	l := VertexLayout{
		Elements: make([]Element, len(types)),
	}

	for i, t := range types {
		l.Elements[i] = Element{Offset: int(l.Stride), ElementType: t}
		l.Stride += t.Size()
	}

	return l
}

// FloatsPerVertex is the number of float32s in one vertex of this layout
func (l *VertexLayout) FloatsPerVertex() int {
	return int(l.Stride / 4)
}

// Equal reports whether both layouts have the same element types in the same order
func (l *VertexLayout) Equal(other *VertexLayout) bool {

	if len(l.Elements) != len(other.Elements) {
		return false
	}

	for i := range l.Elements {
		if l.Elements[i].ElementType != other.Elements[i].ElementType {
			return false
		}
	}

	return true
}

type VertexBuffer struct {
	Id uint32
	VertexLayout
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

// Upload replaces the buffer contents. The buffer is left bound to ARRAY_BUFFER
func (vb *VertexBuffer) Upload(values []float32, usage BufUsage) {

	vb.Bind()

	if len(values) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage.ToGL())
		return
	}

	gl.BufferData(gl.ARRAY_BUFFER, len(values)*4, gl.Ptr(&values[0]), usage.ToGL())
}

func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(layout VertexLayout) VertexBuffer {

	vb := VertexBuffer{VertexLayout: layout}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL vertex buffer")
	}

	return vb
}
