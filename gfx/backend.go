package gfx

// Program is a linked program handle owned by a Backend.
type Program interface {
	Name() string
}

// Buffer is a vertex buffer produced by UploadVertices.
// Buffers are created per draw and never reused.
type Buffer interface {
	Len() int
}

// ProgramSource describes one of the fixed programs a Backend can link.
//
// GL-style backends read Vertex and Fragment; the ebiten backend links Kage.
// The attribute and uniform names are what the backend must resolve.
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
	Kage     []byte

	PositionAttr string
	ModelUniform string
	ColorUniform string
}

// Backend is the drawing surface a Renderer depends on.
//
// It mirrors what a WebGL canvas offers for this workload and nothing more.
// Implementations are not safe for concurrent use.
type Backend interface {
	CompileProgram(src ProgramSource) (Program, error)
	UploadVertices(p Program, v Vertices) (Buffer, error)
	SetModelMatrix(p Program, m Mat4)
	SetColor(p Program, c Color)
	DrawTriangleFan(p Program, b Buffer, count int) error

	Clear(c Color)
	Size() (w, h int)
}

// TextDrawer is implemented by backends that can print a caption.
type TextDrawer interface {
	DrawText(x, y int, s string, c Color)
}

// FanProgram is the single program every scene draws with.
var FanProgram = ProgramSource{
	Name: "fan",
	Vertex: `attribute vec2 a_position;
uniform mat4 u_modelMatrix;
void main() {
    gl_Position = u_modelMatrix * vec4(a_position, 0, 1);
    gl_PointSize = 2.0;
}
`,
	Fragment: `precision mediump float;
uniform vec3 u_color;
void main() {
    gl_FragColor = vec4(u_color, 1.0);
}
`,
	Kage: []byte(`//kage:unit pixels

package main

var Color vec3

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(Color, 1)
}
`),
	PositionAttr: "a_position",
	ModelUniform: "u_modelMatrix",
	ColorUniform: "u_color",
}
