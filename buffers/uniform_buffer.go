package buffers

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/assert"
	"github.com/bloeys/nrender/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type UniformBufferFieldInput struct {
	Id   uint16
	Type ElementType
	// Count is the length of an array field of type `[Count]Type`.
	// Count=0 and Count=1 both mean the field is not an array.
	Count uint16
}

type UniformBufferField struct {
	Id            uint16
	Type          ElementType
	AlignedOffset uint16
	// Count is at least 1
	Count uint16
}

func (f *UniformBufferField) isArray() bool {
	return f.Count > 1
}

// span is the number of bytes the field occupies, starting at AlignedOffset
func (f *UniformBufferField) span() uint16 {

	// A single scalar/vector only takes its own size, which lets a float pack right after a vec3
	if !f.isArray() && !f.Type.IsMatrix() {
		return uint16(f.Type.Size())
	}

	return f.Type.Std140Stride() * f.Count
}

// UniformBufferLayout is the std140 layout of a uniform block. It has no GPU state
// so it can be computed and encoded into without a GL context.
type UniformBufferLayout struct {
	// Size is the std140 size of the block in bytes, padded to a 16 byte boundary
	Size   uint32
	Fields []UniformBufferField
}

func NewUniformBufferLayout(fields []UniformBufferFieldInput) UniformBufferLayout {

	l := UniformBufferLayout{
		Fields: make([]UniformBufferField, 0, len(fields)),
	}

	usedIds := make(map[uint16]ElementType, len(fields))

	var offset uint16
	for _, in := range fields {

		if prevType, ok := usedIds[in.Id]; ok {
			logging.ErrLog.Panicf("Uniform buffer field id is reused within the same uniform buffer. FieldId=%d was first used on a field with type=%s and then on a field with type=%s\n", in.Id, prevType, in.Type)
		}
		usedIds[in.Id] = in.Type

		f := UniformBufferField{Id: in.Id, Type: in.Type, Count: max(in.Count, 1)}

		// Arrays start on a vec4 boundary whatever their element type
		alignment := f.Type.Std140Alignment()
		if f.isArray() {
			alignment = 16
		}

		f.AlignedOffset = alignUp(offset, alignment)
		offset = f.AlignedOffset + f.span()

		l.Fields = append(l.Fields, f)
	}

	l.Size = uint32(alignUp(offset, 16))
	return l
}

func alignUp(offset, alignment uint16) uint16 {

	if rem := offset % alignment; rem != 0 {
		return offset + alignment - rem
	}

	return offset
}

var gglmTypes = map[ElementType]reflect.Type{
	DataTypeVec2: reflect.TypeFor[gglm.Vec2](),
	DataTypeVec3: reflect.TypeFor[gglm.Vec3](),
	DataTypeVec4: reflect.TypeFor[gglm.Vec4](),
	DataTypeMat2: reflect.TypeFor[gglm.Mat2](),
	DataTypeMat3: reflect.TypeFor[gglm.Mat3](),
	DataTypeMat4: reflect.TypeFor[gglm.Mat4](),
}

// EncodeStruct writes inputStruct into buf following the layout and returns the
// number of bytes from the start of buf that hold data.
//
// The fields of inputStruct must be in the same order and of the same types as the layout fields.
// Array fields accept Go arrays or slices of exactly Count elements.
func (l *UniformBufferLayout) EncodeStruct(buf []byte, inputStruct any) int {

	assert.T(len(buf) >= int(l.Size), "buffer of length=%d is too small to encode a uniform block of size=%d", len(buf), l.Size)

	if inputStruct == nil {
		logging.ErrLog.Panicf("UniformBufferLayout.EncodeStruct called with a value that is nil")
	}

	structVal := reflect.Indirect(reflect.ValueOf(inputStruct))
	if structVal.Kind() != reflect.Struct {
		logging.ErrLog.Panicf("UniformBufferLayout.EncodeStruct called with a value that is not a struct. Val=%v\n", inputStruct)
	}

	if structVal.NumField() < len(l.Fields) {
		logging.ErrLog.Panicf("Struct of type %s has %d fields but the uniform buffer layout has %d\n", structVal.Type(), structVal.NumField(), len(l.Fields))
	}

	end := 0
	for i := range l.Fields {

		f := &l.Fields[i]
		val := reflect.Indirect(structVal.Field(i))

		if kind := val.Kind(); kind == reflect.Array || kind == reflect.Slice {

			if val.Len() != int(f.Count) {
				logging.ErrLog.Panicf("ubo field of id=%d is an array of length=%d but got input of length=%d\n", f.Id, f.Count, val.Len())
			}

			stride := int(f.Type.Std140Stride())
			for j := 0; j < val.Len(); j++ {
				encodeElement(buf, int(f.AlignedOffset)+j*stride, f, val.Index(j))
			}

		} else {

			if f.isArray() {
				logging.ErrLog.Panicf("ubo field of id=%d is an array of length=%d but got a single value of type %s\n", f.Id, f.Count, val.Type())
			}

			encodeElement(buf, int(f.AlignedOffset), f, val)
		}

		end = int(f.AlignedOffset + f.span())
	}

	return end
}

func encodeElement(buf []byte, offset int, f *UniformBufferField, val reflect.Value) {

	typeMatches := false
	switch f.Type {

	case DataTypeUint32:
		typeMatches = val.Kind() == reflect.Uint32
		if typeMatches {
			binary.LittleEndian.PutUint32(buf[offset:], uint32(val.Uint()))
		}

	case DataTypeInt32:
		typeMatches = val.Kind() == reflect.Int32
		if typeMatches {
			binary.LittleEndian.PutUint32(buf[offset:], uint32(int32(val.Int())))
		}

	case DataTypeFloat32:
		typeMatches = val.Kind() == reflect.Float32
		if typeMatches {
			putF32(buf, offset, val.Float())
		}

	default:
		typeMatches = val.Type() == gglmTypes[f.Type]
		if !typeMatches {
			break
		}

		data := val.FieldByName("Data")
		if !f.Type.IsMatrix() {
			putF32Array(buf, offset, data)
			break
		}

		// Each matrix column takes a vec4 slot
		for c := 0; c < data.Len(); c++ {
			putF32Array(buf, offset+c*16, data.Index(c))
		}
	}

	if !typeMatches {
		logging.ErrLog.Panicf("Struct field ordering and types must match uniform buffer fields, but field id=%d of type=%s got a value of type %s\n", f.Id, f.Type, val.Type())
	}
}

func putF32(buf []byte, offset int, val float64) {
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(float32(val)))
}

func putF32Array(buf []byte, offset int, arr reflect.Value) {
	for i := 0; i < arr.Len(); i++ {
		putF32(buf, offset+i*4, arr.Index(i).Float())
	}
}

type UniformBuffer struct {
	Id uint32
	UniformBufferLayout

	// scratch is reused by SetStruct so per-draw updates don't allocate
	scratch []byte
}

func (ub *UniformBuffer) Bind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.Id)
}

func (ub *UniformBuffer) UnBind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (ub *UniformBuffer) SetBindPoint(bindPointIndex uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindPointIndex, ub.Id)
}

// SetStruct encodes inputStruct using the buffer layout and uploads it in one call.
// The buffer is bound to the UNIFORM_BUFFER target as a side effect.
func (ub *UniformBuffer) SetStruct(inputStruct any) {

	if len(ub.scratch) != int(ub.Size) {
		ub.scratch = make([]byte, ub.Size)
	}

	bytesWritten := ub.EncodeStruct(ub.scratch, inputStruct)
	if bytesWritten == 0 {
		return
	}

	ub.Bind()
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, bytesWritten, gl.Ptr(&ub.scratch[0]))
}

func (ub *UniformBuffer) Delete() {

	if ub.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &ub.Id)
	ub.Id = 0
}

func NewUniformBuffer(fields []UniformBufferFieldInput, usage BufUsage) *UniformBuffer {

	ub := &UniformBuffer{
		UniformBufferLayout: NewUniformBufferLayout(fields),
	}

	gl.GenBuffers(1, &ub.Id)
	if ub.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer for a uniform buffer")
	}

	ub.Bind()
	gl.BufferData(gl.UNIFORM_BUFFER, int(ub.Size), gl.Ptr(nil), usage.ToGL())
	ub.UnBind()

	return ub
}
