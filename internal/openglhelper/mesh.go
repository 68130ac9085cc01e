package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// PositionUVLayout is position (3 floats) followed by texture coordinates (2 floats)
var PositionUVLayout = []VertexAttribute{{Components: 3}, {Components: 2}}

// Mesh is a non-indexed vertex array drawn with glDrawArrays
type Mesh struct {
	vao       *VertexArrayObject
	vbo       *BufferObject
	primitive uint32
	count     int32
}

// NewArrayMesh uploads interleaved vertices described by layout
func NewArrayMesh(vertices []float32, layout []VertexAttribute, primitive uint32) (*Mesh, error) {
	stride := floatsPerVertex(layout)
	if stride == 0 || len(vertices)%stride != 0 {
		return nil, fmt.Errorf("vertex data of %d floats does not match a %d float layout", len(vertices), stride)
	}

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	vao.RegisterAttributes(layout)

	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:       vao,
		vbo:       vbo,
		primitive: primitive,
		count:     int32(len(vertices) / stride),
	}, nil
}

// NewCube creates the textured unit cube
func NewCube() (*Mesh, error) {
	return NewArrayMesh(CubeVertices(), PositionUVLayout, gl.TRIANGLES)
}

// Bind makes the mesh's vertex array current
func (m *Mesh) Bind() {
	m.vao.Bind()
}

// Draw issues one draw call for the whole mesh. The mesh must be bound.
func (m *Mesh) Draw() {
	gl.DrawArrays(m.primitive, 0, m.count)
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}

// CubeVertices returns 36 vertices (6 faces, 2 triangles each) of a unit
// cube centered on the origin, laid out as PositionUVLayout.
func CubeVertices() []float32 {
	return []float32{
		// Back face
		-0.5, -0.5, -0.5, 0.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		-0.5, 0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 0.0,

		// Front face
		-0.5, -0.5, 0.5, 0.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,

		// Left face
		-0.5, 0.5, 0.5, 1.0, 0.0,
		-0.5, 0.5, -0.5, 1.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,
		-0.5, 0.5, 0.5, 1.0, 0.0,

		// Right face
		0.5, 0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, 0.5, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0,

		// Bottom face
		-0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, -0.5, 1.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,

		// Top face
		-0.5, 0.5, -0.5, 0.0, 1.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 1.0,
	}
}
