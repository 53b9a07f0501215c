package buffers

import (
	"github.com/bloeys/nrender/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element is one attribute of an interleaved vertex, Offset bytes from the start of the vertex
type Element struct {
	Offset int
	ElementType
}

// ElementType is a shader visible data type, used for vertex attributes and uniform block fields
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	DataTypeMat2
	DataTypeMat3
	DataTypeMat4
)

type elementTypeInfo struct {
	name   string
	glType uint32
	// Scalars and vectors have one column
	cols int32
	rows int32
}

var elementTypeInfos = [...]elementTypeInfo{
	DataTypeUnknown: {name: "Unknown"},

	DataTypeUint32:  {name: "Uint32", glType: gl.UNSIGNED_INT, cols: 1, rows: 1},
	DataTypeInt32:   {name: "Int32", glType: gl.INT, cols: 1, rows: 1},
	DataTypeFloat32: {name: "Float32", glType: gl.FLOAT, cols: 1, rows: 1},

	DataTypeVec2: {name: "Vec2", glType: gl.FLOAT, cols: 1, rows: 2},
	DataTypeVec3: {name: "Vec3", glType: gl.FLOAT, cols: 1, rows: 3},
	DataTypeVec4: {name: "Vec4", glType: gl.FLOAT, cols: 1, rows: 4},

	DataTypeMat2: {name: "Mat2", glType: gl.FLOAT, cols: 2, rows: 2},
	DataTypeMat3: {name: "Mat3", glType: gl.FLOAT, cols: 3, rows: 3},
	DataTypeMat4: {name: "Mat4", glType: gl.FLOAT, cols: 4, rows: 4},
}

func (dt ElementType) info() *elementTypeInfo {
	assert.T(dt > DataTypeUnknown && int(dt) < len(elementTypeInfos), "Unknown data type passed. DataType '%d'", dt)
	return &elementTypeInfos[dt]
}

func (dt ElementType) GLType() uint32 {
	return dt.info().glType
}

// CompCount returns the number of 4 byte components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {
	info := dt.info()
	return info.cols * info.rows
}

// Cols returns the number of matrix columns, which is 1 for scalars and vectors
func (dt ElementType) Cols() int32 {
	return dt.info().cols
}

// Rows returns the number of components per column
func (dt ElementType) Rows() int32 {
	return dt.info().rows
}

// Size returns the tightly packed size in bytes, as used in vertex buffers
func (dt ElementType) Size() int32 {
	return dt.CompCount() * 4
}

func (dt ElementType) IsMatrix() bool {
	return dt.info().cols > 1
}

// Std140Alignment is the byte boundary a single (non-array) field of this type starts on
// inside a std140 uniform block
func (dt ElementType) Std140Alignment() uint16 {

	info := dt.info()
	if info.cols > 1 || info.rows > 2 {
		return 16
	}

	return uint16(info.rows * 4)
}

// Std140Stride is the space one array element takes in a std140 block. Array elements and
// matrix columns are each rounded up to a vec4
func (dt ElementType) Std140Stride() uint16 {
	return uint16(dt.info().cols * 16)
}

func (dt ElementType) String() string {

	if int(dt) >= len(elementTypeInfos) {
		return "Unknown"
	}

	return elementTypeInfos[dt].name
}
