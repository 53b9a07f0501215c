package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderProgram struct {
	Id uint32
}

func linkProgram(shaderIds []uint32) (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	for _, shaderId := range shaderIds {
		gl.AttachShader(id, shaderId)
	}

	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return ShaderProgram{Id: id}, nil
	}

	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	infoLog := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetProgramInfoLog(id, logLength, nil, infoLog)
	gl.DeleteProgram(id)

	return ShaderProgram{}, fmt.Errorf("failed to link shader program: %s", gl.GoStr(infoLog))
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

// GetUnifLoc returns the location of a uniform, or -1 if the program has no active uniform with that name
func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {
	return gl.GetUniformLocation(sp.Id, gl.Str(uniformName+"\x00"))
}

// SetUniformBlockBindingPoint returns false if the program has no active block with this name
func (sp *ShaderProgram) SetUniformBlockBindingPoint(uniformBlockName string, bindPointIndex uint32) bool {

	index := gl.GetUniformBlockIndex(sp.Id, gl.Str(uniformBlockName+"\x00"))
	if index == gl.INVALID_INDEX {
		return false
	}

	gl.UniformBlockBinding(sp.Id, index, bindPointIndex)
	return true
}

func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	gl.DeleteProgram(sp.Id)
	sp.Id = 0
}
