package meshes

// Floats per vertex: position, normal, tangent and uv0
const cubeVertexStride = 3 + 3 + 3 + 2

type cubeFace struct {
	normal    [3]float32
	tangent   [3]float32
	bitangent [3]float32
}

// Faces are counter clockwise when viewed from outside (tangent x bitangent = normal)
var cubeFaces = [6]cubeFace{
	{normal: [3]float32{1, 0, 0}, tangent: [3]float32{0, 0, -1}, bitangent: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, tangent: [3]float32{0, 0, 1}, bitangent: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, tangent: [3]float32{-1, 0, 0}, bitangent: [3]float32{0, 1, 0}},
}

// cubeData returns an interleaved unit cube centered on the origin, using the same
// vertex layout as meshes loaded through NewMesh (without colors)
func cubeData() (vertices []float32, indices []uint32) {

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices = make([]float32, 0, len(cubeFaces)*4*cubeVertexStride)
	indices = make([]uint32, 0, len(cubeFaces)*6)
	for i := 0; i < len(cubeFaces); i++ {

		f := &cubeFaces[i]
		base := uint32(i * 4)
		for _, c := range corners {

			for axis := 0; axis < 3; axis++ {
				vertices = append(vertices, 0.5*(f.normal[axis]+c[0]*f.tangent[axis]+c[1]*f.bitangent[axis]))
			}

			vertices = append(vertices, f.normal[:]...)
			vertices = append(vertices, f.tangent[:]...)
			vertices = append(vertices, (c[0]+1)*0.5, (c[1]+1)*0.5)
		}

		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return vertices, indices
}

// NewCubeMesh creates a unit cube without needing a model file. Requires a GL context
func NewCubeMesh(name string) *Mesh {

	vertices, indices := cubeData()
	md := meshData{
		layout:    vertexLayout(false),
		vertices:  vertices,
		indices:   indices,
		subMeshes: []SubMesh{{IndexCount: int32(len(indices))}},
	}

	return uploadMesh(name, &md)
}
