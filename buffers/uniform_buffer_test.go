package buffers

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
)

func readF32(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestUniformBufferLayoutOffsets(t *testing.T) {

	tests := []struct {
		name            string
		fields          []UniformBufferFieldInput
		expectedOffsets []uint16
		expectedSize    uint32
	}{
		{
			name: "scalars and vectors",
			fields: []UniformBufferFieldInput{
				{Id: 0, Type: DataTypeFloat32},
				{Id: 1, Type: DataTypeVec3},
				{Id: 2, Type: DataTypeFloat32},
				{Id: 3, Type: DataTypeMat2},
			},
			expectedOffsets: []uint16{0, 16, 28, 32},
			expectedSize:    64,
		},
		{
			name: "arrays",
			fields: []UniformBufferFieldInput{
				{Id: 0, Type: DataTypeFloat32},
				{Id: 1, Type: DataTypeVec3},
				{Id: 2, Type: DataTypeFloat32, Count: 4},
				{Id: 3, Type: DataTypeInt32},
				{Id: 4, Type: DataTypeInt32, Count: 3},
				{Id: 5, Type: DataTypeVec3, Count: 2},
				{Id: 6, Type: DataTypeVec4, Count: 2},
				{Id: 7, Type: DataTypeMat2, Count: 2},
				{Id: 8, Type: DataTypeMat3, Count: 2},
				{Id: 9, Type: DataTypeMat4, Count: 2},
			},
			expectedOffsets: []uint16{0, 16, 32, 96, 112, 160, 192, 224, 288, 384},
			expectedSize:    512,
		},
		{
			name: "frame block",
			fields: []UniformBufferFieldInput{
				{Id: 0, Type: DataTypeMat4},
				{Id: 1, Type: DataTypeMat4},
				{Id: 2, Type: DataTypeMat4},
				{Id: 3, Type: DataTypeVec4},
				{Id: 4, Type: DataTypeFloat32},
				{Id: 5, Type: DataTypeFloat32},
				{Id: 6, Type: DataTypeUint32},
			},
			expectedOffsets: []uint16{0, 64, 128, 192, 208, 212, 216},
			expectedSize:    224,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			l := NewUniformBufferLayout(tt.fields)
			if l.Size != tt.expectedSize {
				t.Errorf("expected size %d, got %d", tt.expectedSize, l.Size)
			}

			if len(l.Fields) != len(tt.expectedOffsets) {
				t.Fatalf("expected %d fields, got %d: %+v", len(tt.expectedOffsets), len(l.Fields), l.Fields)
			}

			for i, f := range l.Fields {
				if f.AlignedOffset != tt.expectedOffsets[i] {
					t.Errorf("field %d (id=%d, type=%s): expected offset %d, got %d", i, f.Id, f.Type.String(), tt.expectedOffsets[i], f.AlignedOffset)
				}
			}
		})
	}
}

func TestUniformBufferLayoutDuplicateIdPanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate field ids to panic")
		}
	}()

	NewUniformBufferLayout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeFloat32},
		{Id: 0, Type: DataTypeVec3},
	})
}

func TestEncodeStruct(t *testing.T) {

	type testBlock struct {
		F1 float32
		V3 gglm.Vec3
		F2 float32
		M3 gglm.Mat3
	}

	l := NewUniformBufferLayout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeFloat32},
		{Id: 1, Type: DataTypeVec3},
		{Id: 2, Type: DataTypeFloat32},
		{Id: 3, Type: DataTypeMat3},
	})

	if l.Size != 80 {
		t.Fatalf("expected size 80, got %d", l.Size)
	}

	in := testBlock{
		F1: 1.5,
		V3: gglm.NewVec3(11, 22, 33),
		F2: 9.5,
		M3: gglm.Mat3{Data: [3][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
	}

	buf := make([]byte, l.Size)
	n := l.EncodeStruct(buf, in)
	if n != 80 {
		t.Fatalf("expected 80 bytes written, got %d", n)
	}

	if got := readF32(buf, 0); got != 1.5 {
		t.Errorf("F1: expected 1.5, got %f", got)
	}

	for i, want := range []float32{11, 22, 33} {
		if got := readF32(buf, 16+i*4); got != want {
			t.Errorf("V3[%d]: expected %f, got %f", i, want, got)
		}
	}

	if got := readF32(buf, 28); got != 9.5 {
		t.Errorf("F2: expected 9.5, got %f", got)
	}

	// Mat3 columns are each padded to a vec4
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			want := in.M3.Data[c][r]
			if got := readF32(buf, 32+c*16+r*4); got != want {
				t.Errorf("M3[%d][%d]: expected %f, got %f", c, r, want, got)
			}
		}
	}

	// Pointers to structs encode the same way
	buf2 := make([]byte, l.Size)
	l.EncodeStruct(buf2, &in)
	if string(buf) != string(buf2) {
		t.Error("encoding a pointer to the struct produced different bytes")
	}
}

func TestEncodeStructNamedScalarTypes(t *testing.T) {

	type flags uint32
	type block struct {
		Time  float32
		Flags flags
	}

	l := NewUniformBufferLayout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeFloat32},
		{Id: 1, Type: DataTypeUint32},
	})

	buf := make([]byte, l.Size)
	l.EncodeStruct(buf, block{Time: 2, Flags: 0b101})

	if got := binary.LittleEndian.Uint32(buf[4:]); got != 0b101 {
		t.Fatalf("expected flags 0b101, got %b", got)
	}
}

func TestEncodeStructTypeMismatchPanics(t *testing.T) {

	type block struct {
		V gglm.Vec4
	}

	l := NewUniformBufferLayout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeMat4},
	})

	defer func() {
		if recover() == nil {
			t.Fatal("expected mismatched struct field to panic")
		}
	}()

	l.EncodeStruct(make([]byte, l.Size), block{})
}

func TestEncodeStructArrays(t *testing.T) {

	type block struct {
		Weights [3]float32
		Offsets []gglm.Vec2
		Bones   [2]gglm.Mat2
	}

	l := NewUniformBufferLayout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeFloat32, Count: 3},
		{Id: 1, Type: DataTypeVec2, Count: 2},
		{Id: 2, Type: DataTypeMat2, Count: 2},
	})

	in := block{
		Weights: [3]float32{0.25, 0.5, 0.75},
		Offsets: []gglm.Vec2{gglm.NewVec2(1, 2), gglm.NewVec2(3, 4)},
		Bones: [2]gglm.Mat2{
			{Data: [2][2]float32{{1, 2}, {3, 4}}},
			{Data: [2][2]float32{{5, 6}, {7, 8}}},
		},
	}

	buf := make([]byte, l.Size)
	n := l.EncodeStruct(buf, &in)
	if n != 144 || l.Size != 144 {
		t.Fatalf("expected 144 bytes written and size 144, got %d and %d", n, l.Size)
	}

	// Every array element starts on a vec4 boundary
	for i, want := range in.Weights {
		if got := readF32(buf, i*16); got != want {
			t.Errorf("Weights[%d]: expected %f, got %f", i, want, got)
		}
	}

	for i, v := range in.Offsets {
		for j := 0; j < 2; j++ {
			if got := readF32(buf, 48+i*16+j*4); got != v.Data[j] {
				t.Errorf("Offsets[%d][%d]: expected %f, got %f", i, j, v.Data[j], got)
			}
		}
	}

	for i, m := range in.Bones {
		for c := 0; c < 2; c++ {
			for r := 0; r < 2; r++ {
				if got := readF32(buf, 80+i*32+c*16+r*4); got != m.Data[c][r] {
					t.Errorf("Bones[%d][%d][%d]: expected %f, got %f", i, c, r, m.Data[c][r], got)
				}
			}
		}
	}
}

func TestEncodeStructArrayLengthPanics(t *testing.T) {

	type block struct {
		Weights []float32
	}

	l := NewUniformBufferLayout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeFloat32, Count: 4},
	})

	defer func() {
		if recover() == nil {
			t.Fatal("expected an array of the wrong length to panic")
		}
	}()

	l.EncodeStruct(make([]byte, l.Size), block{Weights: make([]float32, 2)})
}

func TestElementTypeStd140(t *testing.T) {

	tests := []struct {
		dt        ElementType
		size      int32
		alignment uint16
		stride    uint16
	}{
		{dt: DataTypeFloat32, size: 4, alignment: 4, stride: 16},
		{dt: DataTypeUint32, size: 4, alignment: 4, stride: 16},
		{dt: DataTypeVec2, size: 8, alignment: 8, stride: 16},
		{dt: DataTypeVec3, size: 12, alignment: 16, stride: 16},
		{dt: DataTypeVec4, size: 16, alignment: 16, stride: 16},
		{dt: DataTypeMat2, size: 16, alignment: 16, stride: 32},
		{dt: DataTypeMat3, size: 36, alignment: 16, stride: 48},
		{dt: DataTypeMat4, size: 64, alignment: 16, stride: 64},
	}

	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {

			if got := tt.dt.Size(); got != tt.size {
				t.Errorf("expected size %d, got %d", tt.size, got)
			}

			if got := tt.dt.Std140Alignment(); got != tt.alignment {
				t.Errorf("expected alignment %d, got %d", tt.alignment, got)
			}

			if got := tt.dt.Std140Stride(); got != tt.stride {
				t.Errorf("expected stride %d, got %d", tt.stride, got)
			}
		})
	}

	if got := ElementType(200).String(); got != "Unknown" {
		t.Errorf("expected out of range types to print as Unknown, got %s", got)
	}
}
