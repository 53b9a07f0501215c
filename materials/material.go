package materials

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/assert"
	"github.com/bloeys/nrender/assets"
	"github.com/bloeys/nrender/renderer"
	"github.com/bloeys/nrender/shaders"
	"github.com/bloeys/nrender/uniforms"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Material = &Material{}

type TextureSlot uint32

const (
	TextureSlot_Diffuse  TextureSlot = 0
	TextureSlot_Specular TextureSlot = 1
	TextureSlot_Normal   TextureSlot = 2
	TextureSlot_Emission TextureSlot = 3

	// Slots bound once per frame by the render layer rather than by materials
	TextureSlot_ColorLUT    TextureSlot = 14
	TextureSlot_Environment TextureSlot = 15
)

// Sampler names a material's shader may declare, with the slot each one reads
var samplerSlots = []struct {
	Name string
	Slot TextureSlot
}{
	{Name: "material.diffuse", Slot: TextureSlot_Diffuse},
	{Name: "material.specular", Slot: TextureSlot_Specular},
	{Name: "material.normal", Slot: TextureSlot_Normal},
	{Name: "material.emission", Slot: TextureSlot_Emission},
	{Name: "u_ColorLUT", Slot: TextureSlot_ColorLUT},
	{Name: "u_Environment", Slot: TextureSlot_Environment},
}

type Material struct {
	Name       string
	ShaderProg shaders.ShaderProgram

	UnifLocs map[string]int32

	DiffuseTex  uint32
	SpecularTex uint32
	NormalTex   uint32
	EmissionTex uint32

	// Parameters uploaded by Apply. Names must exist in the shader
	FloatParams map[string]float32
	Vec4Params  map[string]gglm.Vec4
}

// BindShader makes the material's program current
func (m *Material) BindShader() {
	m.ShaderProg.Bind()
}

// Apply binds the material textures to their slots and uploads its parameters
func (m *Material) Apply() {

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Diffuse))
	gl.BindTexture(gl.TEXTURE_2D, m.DiffuseTex)

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Specular))
	gl.BindTexture(gl.TEXTURE_2D, m.SpecularTex)

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Normal))
	gl.BindTexture(gl.TEXTURE_2D, m.NormalTex)

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Emission))
	gl.BindTexture(gl.TEXTURE_2D, m.EmissionTex)

	for name, val := range m.FloatParams {
		m.SetUnifFloat32(name, val)
	}

	for name, val := range m.Vec4Params {
		m.SetUnifVec4(name, &val)
	}
}

// SetUniformBlockBindingPoint connects a uniform block of the shader to a buffer binding point.
// Returns false if the shader has no (active) block with this name.
func (m *Material) SetUniformBlockBindingPoint(uniformBlockName string, bindPointIndex uint32) bool {
	return m.ShaderProg.SetUniformBlockBindingPoint(uniformBlockName, bindPointIndex)
}

func (m *Material) GetUnifLoc(uniformName string) int32 {

	loc, ok := m.UnifLocs[uniformName]
	if ok {
		return loc
	}

	loc = m.ShaderProg.GetUnifLoc(uniformName)
	assert.T(loc != -1, "Uniform '"+uniformName+"' doesn't exist on material "+m.Name)
	m.UnifLocs[uniformName] = loc
	return loc
}

func (m *Material) SetUnifFloat32(uniformName string, val float32) {
	gl.ProgramUniform1f(m.ShaderProg.Id, m.GetUnifLoc(uniformName), val)
}

func (m *Material) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), 1, &vec4.Data[0])
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func NewMaterial(matName, shaderPath string) (*Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShader(shaderPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create new material '%s': %w", matName, err)
	}

	return newMaterial(matName, shdrProg), nil
}

// newMaterial connects the shared uniform blocks and the known samplers the shader declares,
// and fills texture slots with the default textures
func newMaterial(matName string, shdrProg shaders.ShaderProgram) *Material {

	m := &Material{
		Name:        matName,
		ShaderProg:  shdrProg,
		UnifLocs:    make(map[string]int32),
		FloatParams: make(map[string]float32),
		Vec4Params:  make(map[string]gglm.Vec4),

		DiffuseTex:  assets.DefaultDiffuseTexId.TexID,
		SpecularTex: assets.DefaultSpecularTexId.TexID,
		NormalTex:   assets.DefaultNormalTexId.TexID,
		EmissionTex: assets.DefaultEmissionTexId.TexID,
	}

	m.SetUniformBlockBindingPoint(uniforms.FrameBlockName, uniforms.FrameBindingPoint)
	m.SetUniformBlockBindingPoint(uniforms.InstanceBlockName, uniforms.InstanceBindingPoint)

	for _, s := range samplerSlots {
		if loc := shdrProg.GetUnifLoc(s.Name); loc != -1 {
			gl.ProgramUniform1i(shdrProg.Id, loc, int32(s.Slot))
		}
	}

	return m
}
