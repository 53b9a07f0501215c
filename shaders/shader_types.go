package shaders

import (
	"github.com/bloeys/nrender/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderType uint8

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
	ShaderType_Geometry
)

var shaderTypeInfos = [...]struct {
	// marker is the text after '//shader:' that starts a stage in a combined file
	marker string
	glType uint32
}{
	ShaderType_Unknown:  {marker: "unknown"},
	ShaderType_Vertex:   {marker: "vertex", glType: gl.VERTEX_SHADER},
	ShaderType_Fragment: {marker: "fragment", glType: gl.FRAGMENT_SHADER},
	ShaderType_Geometry: {marker: "geometry", glType: gl.GEOMETRY_SHADER},
}

func (s ShaderType) ToGL() uint32 {
	assert.T(s != ShaderType_Unknown && int(s) < len(shaderTypeInfos), "Unknown shader type '%d'", s)
	return shaderTypeInfos[s].glType
}

func (s ShaderType) String() string {

	if int(s) >= len(shaderTypeInfos) {
		return "unknown"
	}

	return shaderTypeInfos[s].marker
}

func shaderTypeFromMarker(marker string) ShaderType {

	for i := ShaderType_Vertex; int(i) < len(shaderTypeInfos); i++ {
		if shaderTypeInfos[i].marker == marker {
			return i
		}
	}

	return ShaderType_Unknown
}
