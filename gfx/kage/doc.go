// Package kage implements gfx.Backend on an ebiten image.
//
// The fan program is linked as a Kage fragment shader. Kage has no vertex
// stage, so the model matrix is applied on the CPU before the points are
// handed to DrawTrianglesShader.
package kage
