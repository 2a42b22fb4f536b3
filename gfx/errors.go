package gfx

import "errors"

var (
	ErrInvalidVertices = errors.New("invalid vertices")
	ErrInvalidSegments = errors.New("circle segments must be positive")
	ErrNoSurface       = errors.New("no rendering surface")
	ErrProgram         = errors.New("program link failed")
	ErrForeignHandle   = errors.New("handle belongs to another backend")
)
