package buffers

import (
	"github.com/bloeys/nrender/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// BufUsage is the hint given to glBufferData: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
type BufUsage uint8

const (
	BufUsage_Unknown BufUsage = iota

	// Set once, drawn many times (meshes)
	BufUsage_Static_Draw
	// Rewritten often, drawn many times (uniform blocks)
	BufUsage_Dynamic_Draw
	// Set once, drawn a few times
	BufUsage_Stream_Draw
)

var bufUsageToGL = [...]uint32{
	BufUsage_Static_Draw:  gl.STATIC_DRAW,
	BufUsage_Dynamic_Draw: gl.DYNAMIC_DRAW,
	BufUsage_Stream_Draw:  gl.STREAM_DRAW,
}

func (b BufUsage) ToGL() uint32 {
	assert.T(b != BufUsage_Unknown && int(b) < len(bufUsageToGL), "Unexpected BufUsage value '%d'", b)
	return bufUsageToGL[b]
}
