// Package gfx is the small transform-and-draw core shared by every paintbox scene.
//
// Shapes are flat lists of clip-space points. A shape is drawn as a triangle fan
// with one uniform color and one model matrix, through a Backend that exposes the
// handful of operations a GL-style surface provides: program compilation, vertex
// upload, a matrix uniform, a color uniform and a fan draw.
//
// Pipeline (fixed):
//
//	Vertices → Model matrix → Clip space → Rasterization → Canvas.
//
// Every draw uploads a fresh buffer. Nothing is cached or batched.
package gfx
