package buffers

import (
	"github.com/bloeys/nrender/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// IndexBuffer holds uint32 triangle indices
type IndexBuffer struct {
	Id    uint32
	Count int32
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

// Upload replaces the buffer contents. The ELEMENT_ARRAY_BUFFER binding is part of the
// currently bound vertex array, so bind the owning vertex array first
func (ib *IndexBuffer) Upload(indices []uint32) {

	ib.Bind()
	ib.Count = int32(len(indices))

	if len(indices) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, BufUsage_Static_Draw.ToGL())
		return
	}

	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(&indices[0]), BufUsage_Static_Draw.ToGL())
}

func (ib *IndexBuffer) Delete() {

	if ib.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
	ib.Count = 0
}

func NewIndexBuffer() IndexBuffer {

	ib := IndexBuffer{}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL index buffer")
	}

	return ib
}
