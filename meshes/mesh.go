package meshes

import (
	"errors"
	"fmt"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/buffers"
	"github.com/bloeys/nrender/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Mesh = &Mesh{}

// SubMesh is a range of the shared index buffer drawn with one call
type SubMesh struct {
	// BaseVertex is added to every index of the submesh
	BaseVertex int32
	// BaseIndex is the first index in the index buffer
	BaseIndex  uint32
	IndexCount int32
}

// Mesh is one or more submeshes sharing a single vertex array. Attribute locations are:
//
//	0: Position
//	1: Normal
//	2: Tangent
//	3: UV0
//	4: Color (only when the model has vertex colors)
type Mesh struct {
	Name      string
	Vao       buffers.VertexArray
	SubMeshes []SubMesh
}

// Draw binds the mesh vao and draws all submeshes. Shader and uniforms must already be set up
func (m *Mesh) Draw() {

	m.Vao.Bind()
	for _, sm := range m.SubMeshes {
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, sm.IndexCount, gl.UNSIGNED_INT, uintptr(sm.BaseIndex*4), sm.BaseVertex)
	}
}

func (m *Mesh) Delete() {
	m.Vao.Delete()
}

// DefaultMeshLoadFlags are always applied when loading a mesh, on top of the flags passed to NewMesh.
// The lit shaders expect tangents, so removing CalcTangentSpace breaks them
var DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate | asig.PostProcessCalcTangentSpace

func vertexLayout(hasColors bool) buffers.VertexLayout {

	if hasColors {
		return buffers.NewVertexLayout(buffers.DataTypeVec3, buffers.DataTypeVec3, buffers.DataTypeVec3, buffers.DataTypeVec2, buffers.DataTypeVec4)
	}

	return buffers.NewVertexLayout(buffers.DataTypeVec3, buffers.DataTypeVec3, buffers.DataTypeVec3, buffers.DataTypeVec2)
}

// meshSource is the vertex data of one submesh before interleaving.
// Normals, tangents and uv0 may be empty, in which case zeros are used
type meshSource struct {
	positions []gglm.Vec3
	normals   []gglm.Vec3
	tangents  []gglm.Vec3
	uv0       []gglm.Vec3
	colors    []gglm.Vec4
	indices   []uint32
}

type meshData struct {
	layout    buffers.VertexLayout
	vertices  []float32
	indices   []uint32
	subMeshes []SubMesh
}

// buildMeshData interleaves all sources into one vertex buffer and one index buffer.
// Every source must have the same layout, since they share a single vertex array
func buildMeshData(sources []meshSource) (meshData, error) {

	if len(sources) == 0 {
		return meshData{}, errors.New("mesh has no submeshes")
	}

	hasColors := len(sources[0].colors) > 0
	md := meshData{layout: vertexLayout(hasColors)}

	vertexCount, indexCount := 0, 0
	for _, src := range sources {
		vertexCount += len(src.positions)
		indexCount += len(src.indices)
	}

	md.vertices = make([]float32, 0, vertexCount*md.layout.FloatsPerVertex())
	md.indices = make([]uint32, 0, indexCount)
	md.subMeshes = make([]SubMesh, 0, len(sources))

	for i := range sources {

		src := &sources[i]
		if (len(src.colors) > 0) != hasColors {
			return meshData{}, fmt.Errorf("vertex layout of submesh %d does not match the first submesh (has colors=%v, first submesh has colors=%v)", i, !hasColors, hasColors)
		}

		n := len(src.positions)
		if err := checkAttribLen(i, "normals", len(src.normals), n); err != nil {
			return meshData{}, err
		}
		if err := checkAttribLen(i, "tangents", len(src.tangents), n); err != nil {
			return meshData{}, err
		}
		if err := checkAttribLen(i, "uv0", len(src.uv0), n); err != nil {
			return meshData{}, err
		}
		if hasColors && len(src.colors) != n {
			return meshData{}, fmt.Errorf("submesh %d has %d colors but %d positions", i, len(src.colors), n)
		}

		for _, idx := range src.indices {
			if int(idx) >= n {
				return meshData{}, fmt.Errorf("submesh %d has index %d but only %d vertices", i, idx, n)
			}
		}

		md.subMeshes = append(md.subMeshes, SubMesh{
			BaseVertex: int32(len(md.vertices) / md.layout.FloatsPerVertex()),
			BaseIndex:  uint32(len(md.indices)),
			IndexCount: int32(len(src.indices)),
		})

		for v := 0; v < n; v++ {

			md.vertices = append(md.vertices, src.positions[v].Data[:]...)
			md.vertices = appendVec3OrZero(md.vertices, src.normals, v)
			md.vertices = appendVec3OrZero(md.vertices, src.tangents, v)

			if len(src.uv0) > 0 {
				md.vertices = append(md.vertices, src.uv0[v].Data[0], src.uv0[v].Data[1])
			} else {
				md.vertices = append(md.vertices, 0, 0)
			}

			if hasColors {
				md.vertices = append(md.vertices, src.colors[v].Data[:]...)
			}
		}

		md.indices = append(md.indices, src.indices...)
	}

	return md, nil
}

func checkAttribLen(subMesh int, name string, got, positions int) error {

	if got == 0 || got == positions {
		return nil
	}

	return fmt.Errorf("submesh %d has %d %s but %d positions", subMesh, got, name, positions)
}

func appendVec3OrZero(out []float32, vs []gglm.Vec3, i int) []float32 {

	if len(vs) == 0 {
		return append(out, 0, 0, 0)
	}

	return append(out, vs[i].Data[:]...)
}

func flattenFaces(faces []asig.Face) ([]uint32, error) {

	indices := make([]uint32, 0, len(faces)*3)
	for i := range faces {

		if len(faces[i].Indices) != 3 {
			return nil, fmt.Errorf("face %d has %d indices, only triangles are supported", i, len(faces[i].Indices))
		}

		for _, idx := range faces[i].Indices {
			indices = append(indices, uint32(idx))
		}
	}

	return indices, nil
}

// NewMesh loads every mesh in the model file as a submesh of one Mesh. Requires a GL context
func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (*Mesh, error) {

	scene, release, err := asig.ImportFile(modelPath, DefaultMeshLoadFlags|postProcessFlags)
	if err != nil {
		return nil, fmt.Errorf("failed to load model '%s': %w", modelPath, err)
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return nil, errors.New("no meshes found in file: " + modelPath)
	}

	sources := make([]meshSource, len(scene.Meshes))
	for i, m := range scene.Meshes {

		indices, err := flattenFaces(m.Faces)
		if err != nil {
			return nil, fmt.Errorf("failed to read submesh %d of model '%s': %w", i, modelPath, err)
		}

		sources[i] = meshSource{
			positions: m.Vertices,
			normals:   m.Normals,
			tangents:  m.Tangents,
			uv0:       m.TexCoords[0],
			indices:   indices,
		}

		if len(m.ColorSets) > 0 {
			sources[i].colors = m.ColorSets[0]
		}
	}

	md, err := buildMeshData(sources)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh '%s' from model '%s': %w", name, modelPath, err)
	}

	return uploadMesh(name, &md), nil
}

func uploadMesh(name string, md *meshData) *Mesh {

	mesh := &Mesh{
		Name:      name,
		Vao:       buffers.NewVertexArray(),
		SubMeshes: md.subMeshes,
	}

	vbo := buffers.NewVertexBuffer(md.layout)
	vbo.Upload(md.vertices, buffers.BufUsage_Static_Draw)
	mesh.Vao.AddVertexBuffer(vbo)

	// The vao is still bound so the index buffer binding is recorded in it
	ibo := buffers.NewIndexBuffer()
	ibo.Upload(md.indices)
	mesh.Vao.SetIndexBuffer(ibo)

	// Unbinding stops the next loaded mesh from attaching its buffers to this vao
	mesh.Vao.UnBind()
	return mesh
}
