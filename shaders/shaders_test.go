package shaders

import (
	"bytes"
	"testing"
)

func TestSplitCombinedShader(t *testing.T) {

	src := []byte(`//shader:vertex
#version 410
void main() {}

//shader:fragment
#version 410
void main() {}
`)

	stages, err := SplitCombinedShader(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}

	if stages[0].Type != ShaderType_Vertex || stages[1].Type != ShaderType_Fragment {
		t.Fatalf("expected vertex then fragment, got %s then %s", stages[0].Type, stages[1].Type)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(stages[1].Src), []byte("#version 410")) {
		t.Fatalf("expected stage source to start after the type marker, got '%s'", stages[1].Src)
	}
}

func TestSplitCombinedShaderErrors(t *testing.T) {

	tests := []struct {
		name string
		src  string
	}{
		{name: "no markers", src: "void main() {}"},
		{name: "missing fragment", src: "//shader:vertex\nvoid main() {}"},
		{name: "missing vertex", src: "//shader:fragment\nvoid main() {}"},
		{name: "unknown type", src: "//shader:vertex\nvoid main() {}\n//shader:compute\nvoid main() {}"},
		{name: "duplicate stage", src: "//shader:vertex\nvoid main() {}\n//shader:fragment\nvoid main() {}\n//shader:vertex\nvoid main() {}"},
		{name: "text before first marker", src: "#version 410\n//shader:vertex\nvoid main() {}\n//shader:fragment\nvoid main() {}"},
	}

	for _, tt := range tests {
		if _, err := SplitCombinedShader([]byte(tt.src)); err == nil {
			t.Errorf("%s: expected an error but got nil", tt.name)
		}
	}
}

func TestSplitCombinedShaderGeometry(t *testing.T) {

	src := []byte("\n//shader:vertex\nV\n//shader:geometry\r\nG\n//shader:fragment\nF\n")

	stages, err := SplitCombinedShader(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		typ ShaderType
		src string
	}{
		{typ: ShaderType_Vertex, src: "V\n"},
		{typ: ShaderType_Geometry, src: "G\n"},
		{typ: ShaderType_Fragment, src: "F\n"},
	}

	if len(stages) != len(expected) {
		t.Fatalf("expected %d stages, got %d", len(expected), len(stages))
	}

	for i, want := range expected {
		if stages[i].Type != want.typ || string(stages[i].Src) != want.src {
			t.Errorf("stage %d: expected %s with %q, got %s with %q", i, want.typ, want.src, stages[i].Type, stages[i].Src)
		}
	}
}
