// Package shaders compiles combined shader files, where every stage lives in one file
// and starts after a marker line:
//
//	//shader:vertex
//	...
//	//shader:fragment
//	...
//
// Vertex and fragment stages are required and a geometry stage is optional.
package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const stageMarker = "//shader:"

// ShaderSource is one stage of a combined shader file
type ShaderSource struct {
	Type ShaderType
	Src  []byte
}

// SplitCombinedShader splits a combined source into its stages, in file order.
// Text before the first marker must be whitespace.
func SplitCombinedShader(shaderSrc []byte) ([]ShaderSource, error) {

	var stages []ShaderSource
	seen := map[ShaderType]bool{}

	rest := shaderSrc
	for len(rest) > 0 {

		before, after, found := bytes.Cut(rest, []byte(stageMarker))
		if len(stages) == 0 && len(bytes.TrimSpace(before)) != 0 {
			return nil, errors.New("combined shader has text before the first '" + stageMarker + "' marker")
		}

		if len(stages) > 0 {
			stages[len(stages)-1].Src = before
		}

		if !found {
			break
		}

		markerLine, body, _ := bytes.Cut(after, []byte("\n"))
		marker := strings.TrimSpace(string(markerLine))

		shdrType := shaderTypeFromMarker(marker)
		if shdrType == ShaderType_Unknown {
			return nil, fmt.Errorf("unknown shader type '%s'. Must be one of '%svertex', '%sfragment' or '%sgeometry'", marker, stageMarker, stageMarker, stageMarker)
		}

		if seen[shdrType] {
			return nil, fmt.Errorf("shader stage '%s' appears more than once", shdrType)
		}
		seen[shdrType] = true

		stages = append(stages, ShaderSource{Type: shdrType})
		rest = body
	}

	if !seen[ShaderType_Vertex] {
		return nil, errors.New("no vertex shader found. Put '" + stageMarker + "vertex' before the vertex shader")
	}

	if !seen[ShaderType_Fragment] {
		return nil, errors.New("no fragment shader found. Put '" + stageMarker + "fragment' before the fragment shader")
	}

	return stages, nil
}

func LoadAndCompileCombinedShader(shaderPath string) (ShaderProgram, error) {

	combinedSource, err := os.ReadFile(shaderPath)
	if err != nil {
		return ShaderProgram{}, fmt.Errorf("failed to read shader '%s': %w", shaderPath, err)
	}

	prog, err := LoadAndCompileCombinedShaderSrc(combinedSource)
	if err != nil {
		return ShaderProgram{}, fmt.Errorf("shader '%s': %w", shaderPath, err)
	}

	return prog, nil
}

// LoadAndCompileCombinedShaderSrc compiles and links all stages. Requires a GL context
func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	stages, err := SplitCombinedShader(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	shaderIds := make([]uint32, 0, len(stages))
	defer func() {
		// Shaders are only flagged for deletion while attached, so they go away with the program
		for _, id := range shaderIds {
			gl.DeleteShader(id)
		}
	}()

	for _, stage := range stages {

		id, err := compileShader(stage)
		if err != nil {
			return ShaderProgram{}, err
		}

		shaderIds = append(shaderIds, id)
	}

	return linkProgram(shaderIds)
}

func compileShader(stage ShaderSource) (uint32, error) {

	shaderId := gl.CreateShader(stage.Type.ToGL())
	if shaderId == 0 {
		return 0, fmt.Errorf("failed to create OpenGL %s shader. OpenGL Error=%d", stage.Type, gl.GetError())
	}

	shaderCStr, shaderFree := gl.Strs(string(stage.Src) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)

	var status int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return shaderId, nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	infoLog := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, infoLog)
	gl.DeleteShader(shaderId)

	return 0, fmt.Errorf("failed to compile %s shader: %s", stage.Type, gl.GoStr(infoLog))
}
